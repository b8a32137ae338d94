// SPDX-License-Identifier: GPL-2.0-or-later

package buffer

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a packed 0xRRGGBBAA value. Alpha is always opaque.
type Color uint32

const alpha = 0xff

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Green = RGB(0, 255, 0)
)

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | alpha)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	a = uint32(c.A())
	a |= a << 8
	return
}

// ParseColor accepts hex colors like "#20c020".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}
