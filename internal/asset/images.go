// Package asset loads the shared image for each tile variant.
//
// The table is populated once before any room is built and is read-only
// afterwards, so it can be shared between rooms without locking.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/samdwyer/roomgen/internal/config"
	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/world"
)

// ErrAssetLoad is returned when a tile image cannot be read or decoded.
var ErrAssetLoad = errors.New("asset load failed")

// Images is the per-variant image table.
type Images struct {
	images [world.KindCount]image.Image
}

// Image returns the shared image for a variant, or nil if none was loaded.
func (im *Images) Image(kind world.Kind) image.Image {
	if kind < 0 || kind >= world.KindCount {
		return nil
	}
	return im.images[kind]
}

// Complete reports whether every variant has an image.
func (im *Images) Complete() bool {
	for _, img := range im.images {
		if img == nil {
			return false
		}
	}
	return true
}

// Load decodes one image file per variant and scales each to tileW x tileH.
// Variants missing from paths are left empty.
func Load(paths map[world.Kind]string, tileW, tileH int) (*Images, error) {
	im := &Images{}
	for kind, path := range paths {
		img, err := loadFile(path, tileW, tileH)
		if err != nil {
			return nil, fmt.Errorf("%w: %s image %s: %v", ErrAssetLoad, kind, path, err)
		}
		im.images[kind] = img
	}
	return im, nil
}

// FromConfig loads configured images and fills every unconfigured variant
// with its placeholder from the tileset. With cfg.AssetDir set, variants
// without an explicit path load the tileset's image file from that directory.
// A configured image that fails to load is an error; there is no fallback for it.
func FromConfig(cfg config.Config, tileset *gamedata.TilesetRegistry) (*Images, error) {
	paths := cfg.Assets.ByKind()
	if cfg.AssetDir != "" {
		for _, kind := range world.Kinds {
			if _, ok := paths[kind]; !ok {
				paths[kind] = filepath.Join(cfg.AssetDir, tileset.ByKind(kind).Image)
			}
		}
	}

	im, err := Load(paths, cfg.TileWidth, cfg.TileHeight)
	if err != nil {
		return nil, err
	}
	for _, kind := range world.Kinds {
		if im.images[kind] == nil {
			im.images[kind] = placeholder(tileset.ByKind(kind), cfg.TileWidth, cfg.TileHeight)
		}
	}
	return im, nil
}

func loadFile(path string, tileW, tileH int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return normalize(src, tileW, tileH), nil
}

// normalize copies src into a tile-sized RGBA image with its origin at (0,0),
// scaling with nearest-neighbour when the source has a different size.
func normalize(src image.Image, tileW, tileH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
	b := src.Bounds()
	if b.Dx() == tileW && b.Dy() == tileH {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
