// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"image/draw"
	"strconv"
	"time"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/cmd/internal/ring"
	"github.com/kortschak/vitals/metric"
)

var black = color.RGBA{A: 0xff}

type heartRate struct {
	img draw.Image
}

func newHeartRate(img draw.Image) *heartRate {
	return &heartRate{img: img}
}

// show renders the rate and its beat period centred in the panel.
func (r *heartRate) show(bpm float64) {
	blank(r.img)

	width := r.img.Bounds().Dx()
	yOffset := -10

	hrText := strconv.Itoa(round(bpm))
	hrFont := &freesans.Bold18pt7b
	_, hrW := tinyfont.LineWidth(hrFont, hrText)
	tinyfont.WriteLine(
		displayShim{r.img},
		hrFont,
		int16(width-int(hrW))/2, int16(int(hrFont.YAdvance)+yOffset), hrText,
		black,
	)

	periodText := "-"
	if p := chart.BeatPeriod(bpm); p != 0 {
		periodText = p.Round(time.Millisecond).String()
	}
	periodFont := &freesans.Regular9pt7b
	_, periodW := tinyfont.LineWidth(periodFont, periodText)
	tinyfont.WriteLine(
		displayShim{r.img},
		periodFont,
		int16(width-int(periodW))/2, int16(int(periodFont.YAdvance)+int(hrFont.YAdvance)+yOffset), periodText,
		black,
	)
}

type rateHistory struct {
	img draw.Image
}

func newRateHistory(img draw.Image) *rateHistory {
	return &rateHistory{img: img}
}

// historyPad is the margin around the history trend.
const historyPad = 8

// plot draws the smoothed trend of series with a marker at each
// reading. An empty series leaves the panel blank.
func (h *rateHistory) plot(series metric.Series) {
	blank(h.img)

	b := h.img.Bounds()
	t := chart.NewTrend(series, chart.Box{
		Width:   float64(b.Dx()),
		Height:  float64(b.Dy()),
		Padding: historyPad,
	})
	if t.NoData {
		return
	}
	stroke(h.img, t.Path, color.Black)
	for _, p := range t.Points {
		x, y := round(p.X), round(p.Y)
		line(h.img, x-1, y, x+1, y, color.Black)
		line(h.img, x, y-1, x, y+1, color.Black)
	}
}

// tracePlot is a scrolling trace of the heartbeat pattern.
type tracePlot struct {
	img draw.Image
	buf []float64
}

func newTracePlot(img draw.Image) *tracePlot {
	return &tracePlot{
		img: img,
		buf: make([]float64, img.Bounds().Dx()),
	}
}

func (p *tracePlot) width() int {
	return p.img.Bounds().Dx()
}

// add plots the most recent samples held by r, which are vertical
// fractions of the panel. Nothing is drawn until r holds a full
// panel width of samples.
func (p *tracePlot) add(r *ring.Buffer[float64]) {
	if r.Len() < p.width() {
		return
	}
	r.CopyTo(p.buf)
	plotTrace(p.img, p.buf)
}

func plotTrace(dst draw.Image, trace []float64) {
	blank(dst)

	height := float64(dst.Bounds().Dy() - 1)
	pts := make([]chart.Point, len(trace))
	for i, v := range trace {
		pts[i] = chart.Pt(float64(i), v*height)
	}
	stroke(dst, chart.Polyline(pts), color.Black)
}
