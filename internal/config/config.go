// Package config holds display, tile and asset settings for room loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/roomgen/internal/world"
)

const (
	// Default display dimensions in pixels
	DefaultDisplayWidth  = 800
	DefaultDisplayHeight = 600

	// Default tile dimensions in pixels
	DefaultTileWidth  = 32
	DefaultTileHeight = 32

	// DefaultStartRoom is the blueprint loaded first.
	DefaultStartRoom = "start.txt"
)

// AssetPaths holds the image file for each tile variant.
// An empty path means the variant uses its tileset placeholder.
type AssetPaths struct {
	Wall  string
	Floor string
	Hole  string
}

// ByKind returns the configured paths keyed by tile variant, omitting empty ones.
func (a AssetPaths) ByKind() map[world.Kind]string {
	paths := make(map[world.Kind]string, world.KindCount)
	for kind, p := range map[world.Kind]string{
		world.KindWall:  a.Wall,
		world.KindFloor: a.Floor,
		world.KindHole:  a.Hole,
	} {
		if p != "" {
			paths[kind] = p
		}
	}
	return paths
}

// Config holds room loading options.
type Config struct {
	// Display size in pixels. Both room layers are allocated at exactly this size.
	DisplayWidth  int
	DisplayHeight int

	// Tile size in pixels. Grid column/row indexes are multiplied by these.
	TileWidth  int
	TileHeight int

	Assets AssetPaths

	// AssetDir, if set, supplies tileset image files for variants without an explicit path.
	AssetDir string

	// RoomDir is a directory of blueprint files. Empty means the embedded rooms.
	RoomDir string
	// StartRoom is the blueprint file name loaded first.
	StartRoom string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DisplayWidth:  DefaultDisplayWidth,
		DisplayHeight: DefaultDisplayHeight,
		TileWidth:     DefaultTileWidth,
		TileHeight:    DefaultTileHeight,
		StartRoom:     DefaultStartRoom,
	}
}

// FromEnv returns the default configuration overlaid with ROOMGEN_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"ROOMGEN_DISPLAY_WIDTH", &cfg.DisplayWidth},
		{"ROOMGEN_DISPLAY_HEIGHT", &cfg.DisplayHeight},
		{"ROOMGEN_TILE_WIDTH", &cfg.TileWidth},
		{"ROOMGEN_TILE_HEIGHT", &cfg.TileHeight},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", v.key, raw, err)
		}
		*v.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ROOMGEN_WALL_IMAGE", &cfg.Assets.Wall},
		{"ROOMGEN_FLOOR_IMAGE", &cfg.Assets.Floor},
		{"ROOMGEN_HOLE_IMAGE", &cfg.Assets.Hole},
		{"ROOMGEN_ASSET_DIR", &cfg.AssetDir},
		{"ROOMGEN_ROOM_DIR", &cfg.RoomDir},
		{"ROOMGEN_START_ROOM", &cfg.StartRoom},
	}
	for _, v := range strs {
		if raw := os.Getenv(v.key); raw != "" {
			*v.dst = raw
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks that the dimensions describe a usable display.
func (c Config) Validate() error {
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.DisplayWidth, c.DisplayHeight)
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %dx%d", c.TileWidth, c.TileHeight)
	}
	if c.TileWidth > c.DisplayWidth || c.TileHeight > c.DisplayHeight {
		return errors.New("tile size exceeds display size")
	}
	if c.StartRoom == "" {
		return errors.New("start room must be set")
	}
	return nil
}

// GridSize returns how many whole tiles fit on the display.
func (c Config) GridSize() (cols, rows int) {
	return c.DisplayWidth / c.TileWidth, c.DisplayHeight / c.TileHeight
}
