// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The vitals command is a health monitoring companion showing vital
// signs, daily activity, appointments, a medicine marketplace and a
// user profile from a built in dataset.
//
// With -export, the command writes each chart as SVG and PNG to a
// directory and exits without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/kortschak/vitals/config"
	"github.com/kortschak/vitals/internal/logging"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/state"
	"github.com/kortschak/vitals/theme"
)

func main() {
	envFile := flag.String("env", ".env", "optional env file")
	dark := flag.Bool("dark", false, "start in dark mode")
	exportDir := flag.String("export", "", "write charts as SVG and PNG to this directory and exit")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dark":
			cfg.DarkMode = *dark
		case "export":
			cfg.ExportDir = *exportDir
		}
	})

	log, err := logging.New("vitals", logging.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	data, err := mock.Load()
	if err != nil {
		log.Fatal("failed to load dataset", zap.Error(err))
	}

	if cfg.ExportDir != "" {
		err = export(cfg.ExportDir, data, theme.For(cfg.DarkMode), log)
		if err != nil {
			log.Fatal("export failed", zap.Error(err))
		}
		return
	}

	bpm := cfg.BPM
	if bpm == 0 {
		bpm, err = data.CurrentValue(metric.HeartRate)
		if err != nil {
			log.Warn("no current heart rate", zap.Error(err))
		}
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Vitals"), app.Size(unit.Dp(420), unit.Dp(760)))
		err := loop(w, state.New(cfg.DarkMode), data, bpm, log)
		if err != nil {
			log.Fatal("window failed", zap.Error(err))
		}
		log.Sync()
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, st *state.App, data *mock.Data, bpm float64, log *zap.Logger) error {
	expl := explorer.NewExplorer(w)
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := newUI(st, data, th, expl, bpm, log)
	defer u.stop()

	events := make(chan event.Event)
	ack := make(chan struct{})

	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-ack
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	var ops op.Ops
	for e := range events {
		expl.ListenEvents(e)
		switch e := e.(type) {
		case app.DestroyEvent:
			ack <- struct{}{}
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
		ack <- struct{}{}
	}
	return nil
}
