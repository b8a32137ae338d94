package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	developer bool
	noVSync   bool

	screenshot = boolInt{false, 1}

	width   int
	height  int
	scale   int
	glMajor int
	glMinor int
	frames  int

	title      string
	foreground string
	background string
	shotDir    string
	shotFormat string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&developer, "developer", false, "print developer messages")
	flag.BoolVar(&noVSync, "novsync", false, "do not wait for vertical sync")

	flag.Var(&screenshot, "screenshot", "save a screenshot, optional frame number (default 1)")

	flag.IntVar(&width, "width", 224, "buffer width")
	flag.IntVar(&height, "height", 256, "buffer height")
	flag.IntVar(&scale, "scale", 2, "window pixels per buffer pixel")
	flag.IntVar(&glMajor, "glmajor", 4, "requested OpenGL core major version, 3.3 is the lowest accepted")
	flag.IntVar(&glMinor, "glminor", 1, "requested OpenGL core minor version")
	flag.IntVar(&frames, "frames", 0, "quit after this many frames, 0 runs until the window is closed")

	flag.StringVar(&title, "title", "Space Invaders", "window title")
	flag.StringVar(&foreground, "fg", "#00ff00", "sprite color")
	flag.StringVar(&background, "bg", "#121230", "background color")
	flag.StringVar(&shotDir, "shotdir", ".", "screenshot directory")
	flag.StringVar(&shotFormat, "shotformat", "png", "screenshot format: png or webp")
}

func Developer() bool {
	return developer
}

func VSync() bool {
	return !noVSync
}

func Screenshot() bool {
	return screenshot.set
}

func ScreenshotFrame() int {
	return screenshot.num
}

func Width() int {
	return width
}

func Height() int {
	return height
}

func Scale() int {
	return scale
}

func GLMajor() int {
	return glMajor
}

func GLMinor() int {
	return glMinor
}

func Frames() int {
	return frames
}

func Title() string {
	return title
}

func Foreground() string {
	return foreground
}

func Background() string {
	return background
}

func ScreenshotDirectory() string {
	return shotDir
}

func ScreenshotFormat() string {
	return shotFormat
}
