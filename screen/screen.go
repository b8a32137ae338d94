// SPDX-License-Identifier: GPL-2.0-or-later

// Package screen presents a buffer.Buffer on the window: it uploads the
// pixels into a texture every frame and draws one full-surface triangle
// sampling it.
package screen

import (
	"log"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/buffer"
	"github.com/therjak/goinvaders/math"
)

type State int

const (
	Uninitialized State = iota
	ContextReady
	ShadersLinked
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case ContextReady:
		return "ContextReady"
	case ShadersLinked:
		return "ShadersLinked"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	}
	return "State(?)"
}

type Viewport struct {
	X, Y, Width, Height int
}

type Screen struct {
	state State
	ctx   Context
	dev   Device

	program uint32
	texture uint32
	va      uint32

	width  int
	height int
	frames uint64
}

// Open walks the screen from Uninitialized to Running. If any step fails
// everything acquired so far is released in reverse order and the error is
// returned; no draw call has been issued at that point.
func Open(o Opener, width, height int) (*Screen, error) {
	return open(o, width, height, vertexSource, fragmentSource)
}

func open(o Opener, width, height int, vs, fs string) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid screen size %dx%d", width, height)
	}
	s := &Screen{
		width:  width,
		height: height,
	}
	ctx, dev, err := o.Open()
	if err != nil {
		s.state = Terminated
		return nil, err
	}
	s.ctx = ctx
	s.dev = dev
	s.state = ContextReady

	if err := s.linkProgram(vs, fs); err != nil {
		s.release()
		return nil, err
	}
	s.state = ShadersLinked

	if err := s.allocate(); err != nil {
		s.release()
		return nil, err
	}
	s.state = Running
	return s, nil
}

func (s *Screen) linkProgram(vsrc, fsrc string) error {
	vs, err := s.dev.CompileShader(VertexStage, vsrc)
	if err != nil {
		return err
	}
	defer s.dev.DeleteShader(vs)
	fs, err := s.dev.CompileShader(FragmentStage, fsrc)
	if err != nil {
		return err
	}
	defer s.dev.DeleteShader(fs)
	p, err := s.dev.LinkProgram(vs, fs)
	if err != nil {
		return err
	}
	s.program = p
	s.dev.UseProgram(s.program, samplerName)
	return nil
}

func (s *Screen) allocate() error {
	t, err := s.dev.NewTexture(s.width, s.height)
	if err != nil {
		return errors.Wrap(err, "texture allocation")
	}
	s.texture = t
	va, err := s.dev.NewVertexArray()
	if err != nil {
		return errors.Wrap(err, "vertex array allocation")
	}
	s.va = va
	return nil
}

func (s *Screen) State() State {
	return s.state
}

// Frames returns the number of presented frames.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Present uploads buf, draws it and swaps. It returns false once the window
// asked to close.
func (s *Screen) Present(buf *buffer.Buffer) (bool, error) {
	if s.state != Running {
		return false, errors.Errorf("present called in state %v", s.state)
	}
	if buf.Width() != s.width || buf.Height() != s.height {
		return false, errors.Errorf("buffer is %dx%d, screen is %dx%d",
			buf.Width(), buf.Height(), s.width, s.height)
	}
	if err := s.dev.UploadTexture(s.texture, s.width, s.height, buf.Pix()); err != nil {
		return false, errors.Wrap(err, "texture upload")
	}
	if err := s.dev.Draw(s.Viewport(), s.va); err != nil {
		return false, errors.Wrap(err, "draw")
	}
	s.ctx.SwapBuffers()
	s.frames++
	return !s.ctx.PollEvents(), nil
}

// Viewport is the part of the drawable the buffer is scaled into.
func (s *Screen) Viewport() Viewport {
	if s.ctx == nil {
		return Viewport{}
	}
	dw, dh := s.ctx.DrawableSize()
	x, y, w, h := math.Fit(s.width, s.height, dw, dh)
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

// Close releases all resources. Calling it again is a no-op.
func (s *Screen) Close() error {
	if s.state == Terminated {
		return nil
	}
	return s.release()
}

func (s *Screen) release() error {
	if s.va != 0 {
		s.dev.DeleteVertexArray(s.va)
		s.va = 0
	}
	if s.texture != 0 {
		s.dev.DeleteTexture(s.texture)
		s.texture = 0
	}
	if s.program != 0 {
		s.dev.DeleteProgram(s.program)
		s.program = 0
	}
	var err error
	if s.ctx != nil {
		err = s.ctx.Close()
		if err != nil {
			log.Printf("closing context: %v", err)
		}
		s.ctx = nil
	}
	s.state = Terminated
	return err
}
