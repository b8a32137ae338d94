// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"
)

var (
	startTime = time.Now()
)

func QTime() time.Duration {
	return time.Since(startTime)
}

// FrameRate counts frames and reports the rate once per interval.
type FrameRate struct {
	interval time.Duration
	start    time.Duration
	frames   int
	now      func() time.Duration
}

func NewFrameRate(interval time.Duration) *FrameRate {
	return &FrameRate{
		interval: interval,
		start:    QTime(),
		now:      QTime,
	}
}

// Frame records one frame. Once the interval has passed it returns the
// frames per second over it and starts a new interval.
func (f *FrameRate) Frame() (float64, bool) {
	f.frames++
	now := f.now()
	d := now - f.start
	if d < f.interval || d <= 0 {
		return 0, false
	}
	fps := float64(f.frames) / d.Seconds()
	f.frames = 0
	f.start = now
	return fps, true
}
