// Package world provides the tile variants a room is built from.
package world

import (
	"fmt"
	"image"
)

// Kind identifies a tile variant.
type Kind int

const (
	// KindWall blocks movement and projectiles.
	KindWall Kind = iota
	// KindFloor is passable and does not interact with sprites.
	KindFloor
	// KindHole is passable but damages whatever stands on it.
	KindHole

	// KindCount is the number of tile variants.
	KindCount
)

// Kinds lists every tile variant in declaration order.
var Kinds = [KindCount]Kind{KindWall, KindFloor, KindHole}

// Layer identifies which rendered surface a tile belongs to.
type Layer int

const (
	// LayerFloor is drawn under everything else.
	LayerFloor Layer = iota
	// LayerWalls is drawn over the floor and sprites, transparent where there is no wall.
	LayerWalls
)

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerFloor:
		return "floor"
	case LayerWalls:
		return "walls"
	default:
		return "unknown"
	}
}

// Char returns the blueprint character for the variant.
func (k Kind) Char() rune {
	switch k {
	case KindWall:
		return 'x'
	case KindFloor:
		return '.'
	case KindHole:
		return '0'
	default:
		return '?'
	}
}

// KindFromChar maps a blueprint character to its variant.
// It reports false for characters that do not describe a tile.
func KindFromChar(ch rune) (Kind, bool) {
	switch ch {
	case 'x':
		return KindWall, true
	case '.':
		return KindFloor, true
	case '0':
		return KindHole, true
	default:
		return 0, false
	}
}

// Layer returns the surface the variant is rendered to.
func (k Kind) Layer() Layer {
	if k == KindWall {
		return LayerWalls
	}
	return LayerFloor
}

// IsPassable returns true if sprites can move onto the variant.
func (k Kind) IsPassable() bool {
	return k != KindWall
}

// IsHazard returns true if standing on the variant causes damage.
func (k Kind) IsHazard() bool {
	return k == KindHole
}

// String returns the variant name used in tileset and config files.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindHole:
		return "hole"
	default:
		return "unknown"
	}
}

// ParseKind converts a variant name back to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", name)
}

// Surface is anything a tile can be blitted onto.
type Surface interface {
	Blit(img image.Image, x, y int)
}

// Tile is a single cell of a room. Its position is in pixels and never changes.
type Tile struct {
	kind  Kind
	x, y  int
	image image.Image // shared by every tile of the same kind
}

// NewTile creates a tile of the given kind at pixel position (x, y).
// img is the variant's shared image; it is referenced, never copied.
func NewTile(kind Kind, x, y int, img image.Image) Tile {
	return Tile{kind: kind, x: x, y: y, image: img}
}

// Kind returns the tile variant.
func (t Tile) Kind() Kind {
	return t.kind
}

// Position returns the tile's pixel coordinates.
func (t Tile) Position() (int, int) {
	return t.x, t.y
}

// Image returns the variant's shared image.
func (t Tile) Image() image.Image {
	return t.image
}

// Draw blits the tile's image onto dst at the tile's position.
func (t Tile) Draw(dst Surface) {
	dst.Blit(t.image, t.x, t.y)
}

// Char returns the single-character debug representation of the tile.
func (t Tile) Char() rune {
	return t.kind.Char()
}
