// SPDX-License-Identifier: GPL-2.0-or-later

// Package glh implements screen.Device on top of OpenGL core profile.
// Every call has to happen on the thread that owns the current context.
package glh

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/screen"
)

type Device struct {
	info Info
}

type Info struct {
	Major, Minor int32
	Renderer     string
	Shading      string
}

func (i Info) String() string {
	return fmt.Sprintf("OpenGL %d.%d, renderer %s, GLSL %s", i.Major, i.Minor, i.Renderer, i.Shading)
}

// NewDevice loads the GL function pointers for the current context.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrapf(screen.ErrLoader, "%v", err)
	}
	d := &Device{}
	gl.GetIntegerv(gl.MAJOR_VERSION, &d.info.Major)
	gl.GetIntegerv(gl.MINOR_VERSION, &d.info.Minor)
	d.info.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	d.info.Shading = gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	// glDebugMessageCallback is core since 4.3
	if d.info.Major > 4 || (d.info.Major == 4 && d.info.Minor >= 3) {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(debugCb, nil)
	}
	return d, nil
}

func (d *Device) Info() Info {
	return d.info
}

func (d *Device) NewVertexArray() (uint32, error) {
	var va uint32
	gl.GenVertexArrays(1, &va)
	if va == 0 {
		err := CheckError()
		if err == nil {
			err = errors.New("no vertex array name")
		}
		return 0, errors.Wrap(err, "gen vertex array")
	}
	gl.BindVertexArray(va)
	return va, nil
}

func (d *Device) DeleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

// Draw renders the attribute-less full-surface triangle.
func (d *Device) Draw(vp screen.Viewport, va uint32) error {
	// glClear ignores the viewport, the letterbox bars get cleared too.
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
	gl.BindVertexArray(va)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	return CheckError()
}

// Error is a code returned by glGetError.
type Error uint32

func (e Error) Error() string {
	return fmt.Sprintf("gl error 0x%04x: %s", uint32(e), describe(uint32(e)))
}

func describe(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	case gl.STACK_UNDERFLOW:
		return "stack underflow"
	case gl.STACK_OVERFLOW:
		return "stack overflow"
	}
	return "unknown error"
}

// CheckError drains the GL error queue and returns the first error, if any.
// The remaining ones are logged.
func CheckError() error {
	var first error
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == nil {
			first = Error(code)
			continue
		}
		log.Printf("%v", Error(code))
	}
	return first
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_NOTIFICATION {
		return
	}
	log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d: %s", source, gltype, id, severity, message)
}
