// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The monitor command shows a grayscale vitals card with the current
// heart rate, the recent history of a metric and a scrolling
// heartbeat trace. The card can be saved as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/kortschak/vitals/anim"
	"github.com/kortschak/vitals/config"
	"github.com/kortschak/vitals/internal/logging"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
)

func main() {
	envFile := flag.String("env", ".env", "optional env file")
	metricLabel := flag.String("metric", metric.HeartRate.Label(), "metric shown in the history panel")
	bpm := flag.Float64("bpm", 0, "heart rate driving the trace (0 uses the dataset or VITALS_BPM)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.New("monitor", logging.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	m, err := metric.Parse(*metricLabel)
	if err != nil {
		flag.Usage()
		os.Exit(2)
	}
	data, err := mock.Load()
	if err != nil {
		log.Fatal("failed to load dataset", zap.Error(err))
	}
	rate := *bpm
	if rate == 0 {
		rate = cfg.BPM
	}
	if rate == 0 {
		rate, err = data.CurrentValue(metric.HeartRate)
		if err != nil {
			log.Fatal("failed to get current heart rate", zap.Error(err))
		}
	}

	update := make(chan image.Image)
	mon, err := newMonitor(context.Background(), rate, data.Readings().Filter(m), anim.System, update, log)
	if err != nil {
		log.Fatal("failed to start monitor", zap.Error(err))
	}
	defer mon.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		mon.Close()
		os.Exit(0)
	}()

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Vitals"), app.Size(cardWidth, cardHeight+48))
		if err := loop(w, mon, update, log); err != nil {
			log.Fatal("window failed", zap.Error(err))
		}
		mon.Close()
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, mon *monitor, update <-chan image.Image, log *zap.Logger) error {
	expl := explorer.NewExplorer(w)
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

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
	var (
		img  image.Image
		save widget.Clickable
		ops  op.Ops
	)
	for {
		select {
		case img = <-update:
			w.Invalidate()
		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				ack <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				if save.Clicked(gtx) {
					go savePNG(expl, mon.Snapshot(), log)
				}
				layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						if img == nil {
							return layout.Dimensions{}
						}
						return widget.Image{
							Src: paint.NewImageOp(img),
							Fit: widget.Contain,
						}.Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.UniformInset(unit.Dp(4)).Layout(gtx,
							material.Button(th, &save, "Save PNG").Layout,
						)
					}),
				)
				e.Frame(gtx.Ops)
			}
			ack <- struct{}{}
		}
	}
}

func savePNG(expl *explorer.Explorer, img image.Image, log *zap.Logger) {
	f, err := expl.CreateFile("vitals-card.png")
	if err != nil {
		if !errors.Is(err, explorer.ErrUserDecline) {
			log.Error("failed to create file", zap.Error(err))
		}
		return
	}
	err = writePNG(f, img)
	if err != nil {
		log.Error("failed to save card", zap.Error(err))
		return
	}
	log.Info("saved card")
}

func writePNG(w io.WriteCloser, img image.Image) error {
	err := png.Encode(w, img)
	return errors.Join(err, w.Close())
}
