// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		e    sdl.Event
		want bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, true},
		{"window close", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}, true},
		{"escape down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, true},
		{"escape up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, false},
		{"space down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}, false},
		{"window resized", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}, false},
		{"mouse motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, false},
	}
	for _, tt := range tests {
		if got := isQuit(tt.e); got != tt.want {
			t.Errorf("%s: isQuit() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
