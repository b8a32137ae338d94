// SPDX-License-Identifier: GPL-2.0-or-later

package invaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/buffer"
	"github.com/therjak/goinvaders/config"
	"github.com/therjak/goinvaders/screen"
	"github.com/therjak/goinvaders/sprite"
)

type device struct {
	next     uint32
	live     int
	draws    int
	uploads  int
	last     []uint32
	linkFail bool
}

func (d *device) alloc() uint32 {
	d.next++
	d.live++
	return d.next
}

func (d *device) CompileShader(screen.Stage, string) (uint32, error) { return d.alloc(), nil }
func (d *device) DeleteShader(uint32) { d.live-- }
func (d *device) LinkProgram(...uint32) (uint32, error) {
	if d.linkFail {
		return 0, errors.Wrap(screen.ErrProgramLink, "test")
	}
	return d.alloc(), nil
}
func (d *device) UseProgram(uint32, string) {}
func (d *device) DeleteProgram(uint32) { d.live-- }
func (d *device) NewTexture(int, int) (uint32, error) { return d.alloc(), nil }
func (d *device) DeleteTexture(uint32) { d.live-- }
func (d *device) NewVertexArray() (uint32, error) { return d.alloc(), nil }
func (d *device) DeleteVertexArray(uint32) { d.live-- }
func (d *device) Draw(screen.Viewport, uint32) error { d.draws++; return nil }
func (d *device) UploadTexture(_ uint32, _, _ int, pix []uint32) error {
	d.uploads++
	d.last = append(d.last[:0], pix...)
	return nil
}

type context struct {
	swaps   int
	closeAt int
	closed  bool
}

func (c *context) SwapBuffers() { c.swaps++ }
func (c *context) PollEvents() bool { return c.closeAt > 0 && c.swaps >= c.closeAt }
func (c *context) DrawableSize() (int, int) { return 448, 512 }
func (c *context) Close() error { c.closed = true; return nil }

type opener struct {
	ctx *context
	dev *device
}

func (o *opener) Open() (screen.Context, screen.Device, error) {
	return o.ctx, o.dev, nil
}

func newOpener(closeAt int) *opener {
	return &opener{ctx: &context{closeAt: closeAt}, dev: &device{}}
}

func TestSceneFrame(t *testing.T) {
	cfg := config.Default()
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.X != 112 || s.Y != 128 {
		t.Errorf("alien at %v,%v", s.X, s.Y)
	}
	s.Buffer.Clear(buffer.White)
	s.Frame()
	fg, bg := 0, 0
	for _, p := range s.Buffer.Pix() {
		switch buffer.Color(p) {
		case cfg.Foreground:
			fg++
		case cfg.Background:
			bg++
		}
	}
	if fg != sprite.Alien.Count() || fg+bg != 224*256 {
		t.Errorf("fg = %v, bg = %v", fg, bg)
	}
}

func TestRunUntilClose(t *testing.T) {
	o := newOpener(4)
	if err := Run(o, config.Default()); err != nil {
		t.Fatal(err)
	}
	if o.ctx.swaps != 4 || o.dev.draws != 4 || o.dev.uploads != 4 {
		t.Errorf("swaps %v, draws %v, uploads %v", o.ctx.swaps, o.dev.draws, o.dev.uploads)
	}
	if !o.ctx.closed || o.dev.live != 0 {
		t.Errorf("closed %v, live handles %v", o.ctx.closed, o.dev.live)
	}
	cfg := config.Default()
	want, _ := NewScene(cfg)
	want.Frame()
	for i, p := range want.Buffer.Pix() {
		if o.dev.last[i] != p {
			t.Fatalf("uploaded pixel %d = %08x, want %08x", i, o.dev.last[i], p)
		}
	}
}

func TestRunFrameLimit(t *testing.T) {
	o := newOpener(0)
	cfg := config.Default()
	cfg.Frames = 7
	if err := Run(o, cfg); err != nil {
		t.Fatal(err)
	}
	if o.ctx.swaps != 7 {
		t.Errorf("swaps = %v", o.ctx.swaps)
	}
}

func TestRunScreenshot(t *testing.T) {
	o := newOpener(0)
	cfg := config.Default()
	cfg.Frames = 3
	cfg.Screenshot = 2
	cfg.ScreenshotDir = t.TempDir()
	if err := Run(o, cfg); err != nil {
		t.Fatal(err)
	}
	files, err := filepath.Glob(filepath.Join(cfg.ScreenshotDir, "invaders-*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshots = %v", files)
	}
	if fi, err := os.Stat(files[0]); err != nil || fi.Size() == 0 {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestRunLinkFailure(t *testing.T) {
	o := newOpener(1)
	o.dev.linkFail = true
	err := Run(o, config.Default())
	if errors.Cause(err) != screen.ErrProgramLink {
		t.Errorf("Run() = %v", err)
	}
	if o.dev.draws != 0 {
		t.Errorf("draws = %v", o.dev.draws)
	}
	if !o.ctx.closed || o.dev.live != 0 {
		t.Errorf("closed %v, live handles %v", o.ctx.closed, o.dev.live)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	o := newOpener(1)
	cfg := config.Default()
	cfg.Width = 0
	if err := Run(o, cfg); err == nil {
		t.Errorf("Run with zero width did not fail")
	}
	if o.ctx.closed {
		t.Errorf("context opened for an invalid config")
	}
}
