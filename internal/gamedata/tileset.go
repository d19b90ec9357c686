package gamedata

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// fallbackColor is used when a tile definition carries an unparsable color.
var fallbackColor = color.RGBA{R: 0xff, G: 0x00, B: 0xc3, A: 0xff}

// TileDef describes how a tile variant looks, loaded from JSON.
type TileDef struct {
	Kind  string `json:"kind"`  // Variant name matching world.Kind (e.g., "wall")
	Name  string `json:"name"`  // Display name (e.g., "Wall")
	Color string `json:"color"` // Placeholder color as hex (e.g., "#6E6E82")
	Image string `json:"image"` // Default image file name relative to the asset directory
}

// RGBA returns the placeholder color, falling back to magenta if it does not parse.
func (d *TileDef) RGBA() color.RGBA {
	c, err := ParseHexColor(d.Color)
	if err != nil {
		return fallbackColor
	}
	return c
}

// TCellColor returns the placeholder color as a tcell.Color for terminal previews.
func (d *TileDef) TCellColor() tcell.Color {
	c := d.RGBA()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TilesetFile represents the structure of tileset.json.
type TilesetFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTileset loads tile definitions from the embedded tileset.json file.
func LoadTileset() ([]TileDef, error) {
	file, err := Load[TilesetFile]("tileset.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
