// SPDX-License-Identifier: GPL-2.0-or-later

// Package invaders runs the frame loop: clear the buffer, draw the alien,
// present.
package invaders

import (
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/buffer"
	"github.com/therjak/goinvaders/config"
	"github.com/therjak/goinvaders/conlog"
	"github.com/therjak/goinvaders/qtime"
	"github.com/therjak/goinvaders/screen"
	"github.com/therjak/goinvaders/screenshot"
	"github.com/therjak/goinvaders/sprite"
)

// Scene is the CPU side state of one run.
type Scene struct {
	Buffer *buffer.Buffer
	Alien  *sprite.Sprite
	X, Y   int

	fg buffer.Color
	bg buffer.Color
}

// NewScene places the alien at the centre of the buffer,
// (112,128) for the 224x256 default.
func NewScene(cfg config.Config) (*Scene, error) {
	b, err := buffer.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Buffer: b,
		Alien:  sprite.Alien,
		X:      cfg.Width / 2,
		Y:      cfg.Height / 2,
		fg:     cfg.Foreground,
		bg:     cfg.Background,
	}, nil
}

// Frame renders the CPU side of one frame.
func (s *Scene) Frame() {
	s.Buffer.Clear(s.bg)
	s.Buffer.DrawSprite(s.Alien, s.X, s.Y, s.fg)
}

// Run opens the screen through o and loops until the window is closed or
// the frame limit is reached. SDL and GL require it to be called on the
// main thread.
func Run(o screen.Opener, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	conlog.SetDeveloper(cfg.Developer)
	scene, err := NewScene(cfg)
	if err != nil {
		return err
	}
	scr, err := screen.Open(o, cfg.Width, cfg.Height)
	if err != nil {
		return errors.Wrap(err, "screen setup")
	}
	defer scr.Close()
	conlog.Printf("%s: %dx%d at scale %d\n", cfg.Title, cfg.Width, cfg.Height, cfg.Scale)

	fps := qtime.NewFrameRate(5 * time.Second)
	for {
		scene.Frame()
		more, err := scr.Present(scene.Buffer)
		if err != nil {
			return err
		}
		n := int(scr.Frames())
		if cfg.Screenshot > 0 && n == cfg.Screenshot {
			if _, err := screenshot.Write(cfg.ScreenshotDir, scene.Buffer, cfg.Scale, cfg.ScreenshotFormat); err != nil {
				log.Printf("Screenshot failed: %v", err)
			}
		}
		if r, ok := fps.Frame(); ok {
			conlog.DPrintf("%.1f fps\n", r)
		}
		if !more || (cfg.Frames > 0 && n >= cfg.Frames) {
			break
		}
	}
	return scr.Close()
}
