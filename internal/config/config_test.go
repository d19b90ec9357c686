package config

import (
	"testing"

	"github.com/samdwyer/roomgen/internal/world"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	cols, rows := cfg.GridSize()
	if cols != 25 || rows != 18 {
		t.Errorf("GridSize() = %dx%d, want 25x18", cols, rows)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ROOMGEN_DISPLAY_WIDTH", "640")
	t.Setenv("ROOMGEN_DISPLAY_HEIGHT", "480")
	t.Setenv("ROOMGEN_TILE_WIDTH", "16")
	t.Setenv("ROOMGEN_TILE_HEIGHT", "16")
	t.Setenv("ROOMGEN_WALL_IMAGE", "resources/tiles/t_wall.png")
	t.Setenv("ROOMGEN_START_ROOM", "pit.txt")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.DisplayWidth != 640 || cfg.DisplayHeight != 480 {
		t.Errorf("Display = %dx%d, want 640x480", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.TileWidth != 16 || cfg.TileHeight != 16 {
		t.Errorf("Tile = %dx%d, want 16x16", cfg.TileWidth, cfg.TileHeight)
	}
	if cfg.Assets.Wall != "resources/tiles/t_wall.png" {
		t.Errorf("Assets.Wall = %q", cfg.Assets.Wall)
	}
	if cfg.StartRoom != "pit.txt" {
		t.Errorf("StartRoom = %q, want pit.txt", cfg.StartRoom)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ROOMGEN_DISPLAY_WIDTH", "wide"},
		{"ROOMGEN_TILE_HEIGHT", "-4"},
		{"ROOMGEN_TILE_WIDTH", "4096"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("%s=%q should be rejected", tt.key, tt.value)
			}
		})
	}
}

func TestAssetPathsByKind(t *testing.T) {
	paths := AssetPaths{Wall: "w.png", Hole: "h.png"}.ByKind()

	if len(paths) != 2 {
		t.Fatalf("Expected 2 configured paths, got %d", len(paths))
	}
	if paths[world.KindWall] != "w.png" || paths[world.KindHole] != "h.png" {
		t.Errorf("Unexpected paths: %v", paths)
	}
	if _, ok := paths[world.KindFloor]; ok {
		t.Error("Empty floor path should be omitted")
	}
}
