package asset

import (
	"image"
	"image/draw"

	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/world"
)

// Placeholders builds a complete table of solid-colour tiles from the tileset.
func Placeholders(tileset *gamedata.TilesetRegistry, tileW, tileH int) *Images {
	im := &Images{}
	for _, kind := range world.Kinds {
		im.images[kind] = placeholder(tileset.ByKind(kind), tileW, tileH)
	}
	return im
}

func placeholder(def *gamedata.TileDef, tileW, tileH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
	draw.Draw(img, img.Bounds(), image.NewUniform(def.RGBA()), image.Point{}, draw.Src)
	return img
}
