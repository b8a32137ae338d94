// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

type Number interface {
	int64 | float64 | float32 | int | int32
}

func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

// Fit scales a srcW x srcH rectangle into dstW x dstH keeping the aspect
// ratio and centres it. Integer factors are preferred so pixel art stays
// crisp; only a destination smaller than the source is scaled down by a
// fractional factor.
func Fit(srcW, srcH, dstW, dstH int) (x, y, w, h int) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, 0, 0
	}
	s := math32.Min(float32(dstW)/float32(srcW), float32(dstH)/float32(srcH))
	if s >= 1 {
		s = math32.Floor(s)
	}
	w = int(math32.Round(float32(srcW) * s))
	h = int(math32.Round(float32(srcH) * s))
	w = Clamp(1, w, dstW)
	h = Clamp(1, h, dstH)
	return (dstW - w) / 2, (dstH - h) / 2, w, h
}
