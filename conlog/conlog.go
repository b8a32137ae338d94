// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes user facing messages. By default they go to the
// standard logger.
package conlog

import (
	"log"
	"sync/atomic"
)

var (
	p         = log.Printf
	developer atomic.Bool
)

func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

// SetDeveloper enables DPrintf output.
func SetDeveloper(b bool) {
	developer.Store(b)
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// DPrintf only prints in developer mode.
func DPrintf(format string, v ...interface{}) {
	if developer.Load() {
		p(format, v...)
	}
}
