// SPDX-License-Identifier: GPL-2.0-or-later

// Package config collects the settings of one run.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/buffer"
	cmdl "github.com/therjak/goinvaders/commandline"
	"github.com/therjak/goinvaders/math"
	"github.com/therjak/goinvaders/screenshot"
)

const (
	minScale = 1
	maxScale = 8

	// maxSize is the largest texture side current desktop drivers accept.
	maxSize = 16384
)

type Config struct {
	Title   string
	Width   int
	Height  int
	Scale   int
	GLMajor int
	GLMinor int
	VSync   bool

	Foreground buffer.Color
	Background buffer.Color

	// Frames stops the loop after that many frames, 0 means no limit.
	Frames int

	// Screenshot is the frame after which a screenshot is written, 0 disables it.
	Screenshot       int
	ScreenshotDir    string
	ScreenshotFormat screenshot.Format

	Developer bool
}

// Default is the reference setup: a 224x256 surface shown at twice the size.
func Default() Config {
	return Config{
		Title:            "Space Invaders",
		Width:            224,
		Height:           256,
		Scale:            2,
		GLMajor:          4,
		GLMinor:          1,
		VSync:            true,
		Foreground:       buffer.Green,
		Background:       buffer.RGB(0x12, 0x12, 0x30),
		ScreenshotDir:    ".",
		ScreenshotFormat: screenshot.PNG,
	}
}

// FromCommandline builds the config from the parsed flags.
func FromCommandline() (Config, error) {
	c := Default()
	c.Title = cmdl.Title()
	c.Width = cmdl.Width()
	c.Height = cmdl.Height()
	c.Scale = cmdl.Scale()
	c.GLMajor = cmdl.GLMajor()
	c.GLMinor = cmdl.GLMinor()
	c.VSync = cmdl.VSync()
	c.Frames = cmdl.Frames()
	c.Developer = cmdl.Developer()
	c.ScreenshotDir = cmdl.ScreenshotDirectory()
	if cmdl.Screenshot() {
		c.Screenshot = cmdl.ScreenshotFrame()
	}
	var err error
	if c.Foreground, err = buffer.ParseColor(cmdl.Foreground()); err != nil {
		return c, errors.Wrap(err, "-fg")
	}
	if c.Background, err = buffer.ParseColor(cmdl.Background()); err != nil {
		return c, errors.Wrap(err, "-bg")
	}
	if c.ScreenshotFormat, err = screenshot.ParseFormat(cmdl.ScreenshotFormat()); err != nil {
		return c, errors.Wrap(err, "-shotformat")
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects unusable values. The scale is clamped instead.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > maxSize || c.Height > maxSize {
		return errors.Errorf("invalid size %dx%d, each side must be in 1..%d", c.Width, c.Height, maxSize)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return errors.Errorf("OpenGL %d.%d is too old, need at least 3.3 core", c.GLMajor, c.GLMinor)
	}
	if c.Frames < 0 {
		return errors.Errorf("invalid frame limit %d", c.Frames)
	}
	if c.Screenshot < 0 {
		return errors.Errorf("invalid screenshot frame %d", c.Screenshot)
	}
	if c.Frames > 0 && c.Screenshot > c.Frames {
		return errors.Errorf("screenshot frame %d is after the last frame %d", c.Screenshot, c.Frames)
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = Default().Title
	}
	c.Scale = math.Clamp(minScale, c.Scale, maxScale)
	return nil
}
