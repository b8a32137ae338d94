// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
)

// NewTexture allocates RGBA8 storage. Nearest filtering and edge clamping
// keep the pixel art unfiltered.
func (d *Device) NewTexture(width, height int) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		err := CheckError()
		if err == nil {
			err = errors.New("no texture name")
		}
		return 0, errors.Wrap(err, "gen texture")
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if err := CheckError(); err != nil {
		gl.DeleteTextures(1, &id)
		return 0, err
	}
	return id, nil
}

// UploadTexture replaces the whole texture. pix holds 0xRRGGBBAA words,
// the first row is the bottom one.
func (d *Device) UploadTexture(texture uint32, width, height int, pix []uint32) error {
	if len(pix) < width*height {
		return errors.Errorf("upload needs %d pixels, got %d", width*height, len(pix))
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(pix))
	return CheckError()
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}
