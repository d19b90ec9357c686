package gamedata

import (
	"fmt"
	"image/color"

	"github.com/samdwyer/roomgen/internal/world"
)

// TilesetRegistry holds one tile definition per variant.
type TilesetRegistry struct {
	defs [world.KindCount]*TileDef
	all  []TileDef
}

// NewTilesetRegistry creates a registry from loaded tile definitions.
// Every variant must be defined exactly once, and no placeholder may be pure black
// since pure black is the wall layer's transparent key.
func NewTilesetRegistry(defs []TileDef) (*TilesetRegistry, error) {
	registry := &TilesetRegistry{all: defs}
	for i := range defs {
		kind, err := world.ParseKind(defs[i].Kind)
		if err != nil {
			return nil, err
		}
		if registry.defs[kind] != nil {
			return nil, fmt.Errorf("tile kind %q defined twice", defs[i].Kind)
		}
		c, err := ParseHexColor(defs[i].Color)
		if err != nil {
			return nil, fmt.Errorf("tile kind %q: %w", defs[i].Kind, err)
		}
		if c == (color.RGBA{A: 0xff}) {
			return nil, fmt.Errorf("tile kind %q: placeholder color cannot be pure black", defs[i].Kind)
		}
		registry.defs[kind] = &defs[i]
	}
	for _, k := range world.Kinds {
		if registry.defs[k] == nil {
			return nil, fmt.Errorf("tileset has no definition for %q", k)
		}
	}
	return registry, nil
}

// LoadTilesetRegistry loads and creates a registry from the embedded tileset.json.
func LoadTilesetRegistry() (*TilesetRegistry, error) {
	defs, err := LoadTileset()
	if err != nil {
		return nil, err
	}
	return NewTilesetRegistry(defs)
}

// MustLoadTilesetRegistry loads a registry, panicking on error.
func MustLoadTilesetRegistry() *TilesetRegistry {
	registry, err := LoadTilesetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByKind returns the definition for a variant.
func (r *TilesetRegistry) ByKind(kind world.Kind) *TileDef {
	if kind < 0 || kind >= world.KindCount {
		return nil
	}
	return r.defs[kind]
}

// All returns all tile definitions.
func (r *TilesetRegistry) All() []TileDef {
	return r.all
}

// Count returns the number of definitions in the registry.
func (r *TilesetRegistry) Count() int {
	return len(r.all)
}
