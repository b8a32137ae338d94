// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"github.com/pkg/errors"
)

// Setup failures. All of them are fatal; callers match with errors.Cause.
var (
	ErrContext       = errors.New("context creation failure")
	ErrLoader        = errors.New("gl loader failure")
	ErrShaderCompile = errors.New("shader compile failure")
	ErrProgramLink   = errors.New("program link failure")
)

type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Context is the window and the graphics context bound to the calling thread.
type Context interface {
	SwapBuffers()
	// PollEvents drains pending window events and reports whether the
	// window asked to be closed.
	PollEvents() bool
	// DrawableSize is the size of the default framebuffer in pixels.
	DrawableSize() (int, int)
	Close() error
}

// Device is the subset of the graphics API the presentation path uses.
// Handles are non-zero; zero means "not allocated".
type Device interface {
	CompileShader(stage Stage, src string) (uint32, error)
	DeleteShader(shader uint32)
	// LinkProgram links the shaders into a program. The shaders stay owned
	// by the caller. On failure nothing is left allocated.
	LinkProgram(shaders ...uint32) (uint32, error)
	// UseProgram binds the program and points the named sampler at
	// texture unit 0.
	UseProgram(program uint32, sampler string)
	DeleteProgram(program uint32)
	// NewTexture allocates a width x height texture with nearest filtering
	// and edge clamping.
	NewTexture(width, height int) (uint32, error)
	UploadTexture(texture uint32, width, height int, pix []uint32) error
	DeleteTexture(texture uint32)
	NewVertexArray() (uint32, error)
	DeleteVertexArray(va uint32)
	// Draw clears the default framebuffer, restricts drawing to vp and
	// issues the draw call for the full-surface triangle.
	Draw(vp Viewport, va uint32) error
}

// Opener acquires the window and graphics context.
type Opener interface {
	Open() (Context, Device, error)
}
