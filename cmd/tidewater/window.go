//go:build cgo

package main

import (
	"github.com/appengine-ltd/tidewater/internal/gui"
)

func runWindow(opts options) error {
	t := opts.cfg.Tuning()
	app := gui.NewApp(gui.AppConfig{
		Title:     "Tidewater " + version,
		Width:     int32(t.ViewWidth) * int32(opts.zoom),
		Height:    int32(t.ViewHeight) * int32(opts.zoom),
		FPS:       int32(opts.cfg.Window.FPS),
		Game:      opts.game,
		Logger:    opts.logger,
		Autopilot: opts.autopilot,
	})
	return app.Run()
}
