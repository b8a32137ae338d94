// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"os"

	"github.com/gopxl/mainthread/v2"
	"github.com/therjak/goinvaders/config"
	"github.com/therjak/goinvaders/invaders"
	"github.com/therjak/goinvaders/window"
)

func windowConfig(cfg config.Config) window.Config {
	return window.Config{
		Title:   cfg.Title,
		Width:   cfg.Width * cfg.Scale,
		Height:  cfg.Height * cfg.Scale,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
		VSync:   cfg.VSync,
	}
}

func run() error {
	cfg, err := config.FromCommandline()
	if err != nil {
		return err
	}
	return mainthread.CallErr(func() error {
		return invaders.Run(window.NewOpener(windowConfig(cfg)), cfg)
	})
}

func main() {
	flag.Parse()
	var err error
	mainthread.Run(func() {
		err = run()
	})
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
