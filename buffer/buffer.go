// SPDX-License-Identifier: GPL-2.0-or-later

// Package buffer holds the CPU side frame. The pixel data is row-major with
// row 0 at the bottom, matching the row order OpenGL expects for texture
// uploads.
package buffer

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/sprite"
)

type Buffer struct {
	width  int
	height int
	pix    []uint32
}

func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, errors.Errorf("invalid buffer size %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}, nil
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the backing pixel words, len = Width*Height.
func (b *Buffer) Pix() []uint32 {
	return b.pix
}

func (b *Buffer) Clear(c Color) {
	v := uint32(c)
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Pixel returns the color at x,y with y counted from the bottom row.
func (b *Buffer) Pixel(x, y int) (Color, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return Color(b.pix[y*b.width+x]), true
}

// DrawSprite writes c into every cell covered by a set mask cell. The
// sprite's bottom-left corner is placed at x,y. Cells outside the buffer
// are skipped. Later draws overwrite earlier ones.
func (b *Buffer) DrawSprite(s *sprite.Sprite, x, y int, c Color) {
	v := uint32(c)
	sh := s.Height()
	for xi := 0; xi < s.Width(); xi++ {
		dx := x + xi
		if dx < 0 || dx >= b.width {
			continue
		}
		for yi := 0; yi < sh; yi++ {
			if !s.Set(xi, yi) {
				continue
			}
			dy := sh - 1 + y - yi
			if dy < 0 || dy >= b.height {
				continue
			}
			b.pix[dy*b.width+dx] = v
		}
	}
}

// ColorModel, Bounds and At make the buffer an image.Image. Image rows
// run top-down, so At flips the row index.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Buffer) At(x, y int) color.Color {
	c, ok := b.Pixel(x, b.height-1-y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
