// SPDX-License-Identifier: GPL-2.0-or-later

package sprite

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Sprite is an immutable 1-bit mask. Row 0 of the mask is the top row of
// the art as it is written down.
type Sprite struct {
	width  int
	height int
	mask   []uint8
}

// New copies mask, so later changes by the caller do not leak into the sprite.
func New(width, height int, mask []uint8) (*Sprite, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, errors.Errorf("invalid sprite size %dx%d", width, height)
	}
	if len(mask) != width*height {
		return nil, errors.Errorf("sprite mask has %d cells, want %d", len(mask), width*height)
	}
	m := make([]uint8, len(mask))
	for i, v := range mask {
		if v != 0 {
			m[i] = 1
		}
	}
	return &Sprite{
		width:  width,
		height: height,
		mask:   m,
	}, nil
}

// Parse builds a sprite from text art, one string per row.
// '@', '#', 'X' and '1' set a cell; '.', ' ' and '0' leave it clear.
func Parse(rows ...string) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, errors.New("sprite has no rows")
	}
	w := len(rows[0])
	mask := make([]uint8, 0, w*len(rows))
	for y, r := range rows {
		if len(r) != w {
			return nil, errors.Errorf("row %d has width %d, want %d", y, len(r), w)
		}
		for x, c := range []byte(r) {
			switch c {
			case '@', '#', 'X', '1':
				mask = append(mask, 1)
			case '.', ' ', '0':
				mask = append(mask, 0)
			default:
				return nil, errors.Errorf("invalid cell %q at %d,%d", c, x, y)
			}
		}
	}
	return New(w, len(rows), mask)
}

func MustParse(rows ...string) *Sprite {
	s, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Sprite) Width() int {
	return s.width
}

func (s *Sprite) Height() int {
	return s.height
}

// Set reports whether the mask cell at column x, row y is on.
// Cells outside the sprite are off.
func (s *Sprite) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.mask[y*s.width+x] != 0
}

// Count returns the number of set cells.
func (s *Sprite) Count() int {
	n := 0
	for _, v := range s.mask {
		n += int(v)
	}
	return n
}

func (s *Sprite) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d\n", s.width, s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.Set(x, y) {
				b.WriteByte('@')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
