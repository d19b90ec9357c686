// Package render composes parsed rooms into layered pixel surfaces.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is an RGBA pixel buffer that tiles can be blitted onto.
// A new surface is opaque black.
type Surface struct {
	img   *image.RGBA
	key   color.RGBA
	keyed bool
}

// NewSurface allocates a width x height surface filled with opaque black.
func NewSurface(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Surface{img: img}
}

// Blit draws img with its top-left corner at (x, y). Parts outside the surface are clipped.
func (s *Surface) Blit(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(s.img, r, img, b.Min, draw.Over)
	if s.keyed {
		s.applyKey(r)
	}
}

// SetColorKey makes every pixel of colour c fully transparent, including
// pixels written by later blits.
func (s *Surface) SetColorKey(c color.Color) {
	s.key = color.RGBAModel.Convert(c).(color.RGBA)
	s.keyed = true
	s.applyKey(s.img.Bounds())
}

// ColorKey returns the transparent key colour, if one is set.
func (s *Surface) ColorKey() (color.RGBA, bool) {
	return s.key, s.keyed
}

// Image returns the underlying pixel buffer.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) applyKey(r image.Rectangle) {
	r = r.Intersect(s.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.img.RGBAAt(x, y) == s.key {
				s.img.SetRGBA(x, y, color.RGBA{})
			}
		}
	}
}

// Flatten composites layers in order onto a new image, first layer at the bottom.
func Flatten(layers ...*Surface) *image.RGBA {
	if len(layers) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(layers[0].Bounds())
	for _, l := range layers {
		draw.Draw(dst, dst.Bounds(), l.img, l.img.Bounds().Min, draw.Over)
	}
	return dst
}
