// SPDX-License-Identifier: GPL-2.0-or-later

package screenshot

import (
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

type Format int

const (
	PNG Format = iota
	WebP
)

func (f Format) Extension() string {
	if f == WebP {
		return ".webp"
	}
	return ".png"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return PNG, errors.Errorf("unknown screenshot format %q", s)
}

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	}
	return errors.Errorf("unknown screenshot format %d", f)
}

// Write stores img scaled by factor in dir and returns the file name.
func Write(dir string, img image.Image, factor int, f Format) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "screenshot name")
	}
	name := filepath.Join(dir, "invaders-"+id.String()+f.Extension())
	out, err := os.Create(name)
	if err != nil {
		return "", errors.Wrap(err, "screenshot")
	}
	if err := Encode(out, Scale(img, factor), f); err != nil {
		out.Close()
		os.Remove(name)
		return "", errors.Wrapf(err, "encoding %s", name)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrapf(err, "writing %s", name)
	}
	log.Printf("Wrote %s", name)
	return name, nil
}
