// SPDX-License-Identifier: GPL-2.0-or-later

// Package window creates the SDL window with its OpenGL context.
package window

import (
	"log"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/glh"
	"github.com/therjak/goinvaders/screen"
	"github.com/veandco/go-sdl2/sdl"
)

type Config struct {
	Title   string
	Width   int
	Height  int
	GLMajor int
	GLMinor int
	VSync   bool
}

// Opener implements screen.Opener.
type Opener struct {
	cfg Config
}

func NewOpener(cfg Config) *Opener {
	return &Opener{cfg: cfg}
}

type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// Open creates the window and makes its GL context current. On failure
// everything created so far is destroyed again.
func (o *Opener) Open() (screen.Context, screen.Device, error) {
	w, err := open(o.cfg)
	if err != nil {
		return nil, nil, err
	}
	d, err := glh.NewDevice()
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	log.Printf("%v", d.Info())
	return w, d, nil
}

func sdlError(err error) error {
	if err == nil {
		err = sdl.GetError()
	}
	if err == nil {
		return errors.New("unknown SDL error")
	}
	return err
}

func open(cfg Config) (*Window, error) {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrapf(screen.ErrContext, "sdl init: %v", sdlError(err))
	}
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, errors.Wrapf(screen.ErrContext, "gl attribute %d: %v", a.attr, sdlError(err))
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)
	sw, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(screen.ErrContext, "create window: %v", sdlError(err))
	}
	ctx, err := sw.GLCreateContext()
	if err != nil {
		sw.Destroy()
		sdl.Quit()
		return nil, errors.Wrapf(screen.ErrContext, "create GL %d.%d core context: %v",
			cfg.GLMajor, cfg.GLMinor, sdlError(err))
	}
	if err := sw.GLMakeCurrent(ctx); err != nil {
		sdl.GLDeleteContext(ctx)
		sw.Destroy()
		sdl.Quit()
		return nil, errors.Wrapf(screen.ErrContext, "make context current: %v", sdlError(err))
	}
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Printf("Could not set swap interval %d: %v", interval, err)
	}
	return &Window{
		window:  sw,
		context: ctx,
	}, nil
}

func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

// PollEvents drains the SDL queue. A quit event, closing the window or
// pressing escape requests termination.
func (w *Window) PollEvents() bool {
	quit := false
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if isQuit(e) {
			quit = true
		}
	}
	return quit
}

func isQuit(e sdl.Event) bool {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return ev.Event == sdl.WINDOWEVENT_CLOSE
	case *sdl.KeyboardEvent:
		return ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE
	}
	return false
}

func (w *Window) DrawableSize() (int, int) {
	dw, dh := w.window.GLGetDrawableSize()
	return int(dw), int(dh)
}

func (w *Window) Close() error {
	var err error
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.window != nil {
		err = w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	return err
}
