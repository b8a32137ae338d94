// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"testing"

	"github.com/therjak/goinvaders/buffer"
	"github.com/therjak/goinvaders/screenshot"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Width != 224 || c.Height != 256 {
		t.Errorf("size = %vx%v", c.Width, c.Height)
	}
	if c.Background.A() != 0xff || c.Foreground == c.Background {
		t.Errorf("colors %08x %08x", uint32(c.Foreground), uint32(c.Background))
	}
}

func TestFromCommandlineDefaults(t *testing.T) {
	c, err := FromCommandline()
	if err != nil {
		t.Fatal(err)
	}
	d := Default()
	if c != d {
		t.Errorf("FromCommandline() = %+v, want %+v", c, d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"gl 3.2", func(c *Config) { c.GLMajor, c.GLMinor = 3, 2 }, false},
		{"gl 3.3", func(c *Config) { c.GLMajor, c.GLMinor = 3, 3 }, true},
		{"gl 4.6", func(c *Config) { c.GLMajor, c.GLMinor = 4, 6 }, true},
		{"negative frames", func(c *Config) { c.Frames = -1 }, false},
		{"negative screenshot", func(c *Config) { c.Screenshot = -2 }, false},
		{"max size", func(c *Config) { c.Width, c.Height = 16384, 16384 }, true},
		{"too wide", func(c *Config) { c.Width = 16385 }, false},
		{"too high", func(c *Config) { c.Height = 1 << 20 }, false},
		{"screenshot after last frame", func(c *Config) { c.Frames, c.Screenshot = 3, 4 }, false},
		{"screenshot at last frame", func(c *Config) { c.Frames, c.Screenshot = 3, 3 }, true},
		{"screenshot without frame limit", func(c *Config) { c.Screenshot = 100 }, true},
	}
	for _, tt := range tests {
		c := Default()
		tt.mod(&c)
		err := c.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestValidateClampsScale(t *testing.T) {
	c := Default()
	c.Scale = 0
	c.Validate()
	if c.Scale != 1 {
		t.Errorf("Scale = %v", c.Scale)
	}
	c.Scale = 100
	c.Validate()
	if c.Scale != 8 {
		t.Errorf("Scale = %v", c.Scale)
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	c := Default()
	c.Title = "  "
	c.Validate()
	if c.Title != "Space Invaders" {
		t.Errorf("Title = %q", c.Title)
	}
}

func TestDefaultColors(t *testing.T) {
	c := Default()
	if c.Foreground != buffer.Green {
		t.Errorf("Foreground = %08x", uint32(c.Foreground))
	}
	if c.ScreenshotFormat != screenshot.PNG {
		t.Errorf("ScreenshotFormat = %v", c.ScreenshotFormat)
	}
}
