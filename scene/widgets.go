// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/theme"
)

// Gauge returns a blood pressure dial for a systolic reading.
func Gauge(systolic, width, height float64, pal theme.Palette) Scene {
	g := chart.NewGauge(systolic, chart.PressureDomain, width, height)
	col := g.Status.Color()
	s := Scene{Width: width, Height: height}
	s.Add(
		Path{Path: g.Track.Path(), Style: Style{Stroke: pal.Border, StrokeWidth: 4}},
		Path{Path: g.Level.Path(), Style: Style{Stroke: col, StrokeWidth: 4, RoundCap: true}},
		Circle{Center: g.Center, Radius: 3, Style: Style{Fill: col}},
		Path{
			Path:  chart.Polyline([]chart.Point{g.Needle.From, g.Needle.To}),
			Style: Style{Stroke: col, StrokeWidth: 2, RoundCap: true},
		},
	)
	return s
}

// Heartbeat returns the stylised cardiac cycle.
func Heartbeat(width, height float64, col color.NRGBA) Scene {
	s := Scene{Width: width, Height: height}
	s.Add(Path{
		Path:  chart.Polyline(chart.Heartbeat(width, height)),
		Style: Style{Stroke: col, StrokeWidth: 2, RoundCap: true},
	})
	return s
}

// Oxygen returns the oxygen flow wave.
func Oxygen(width, height float64, col color.NRGBA) Scene {
	s := Scene{Width: width, Height: height}
	s.Add(Path{
		Path:  chart.OxygenWave(width, height),
		Style: Style{Stroke: col, StrokeWidth: 2, RoundCap: true},
	})
	return s
}

// Trend returns a smoothed line chart of series with dashed grid
// lines, point markers and date labels, or a placeholder when series
// is empty.
func Trend(series metric.Series, box chart.Box, col color.NRGBA, pal theme.Palette) Scene {
	t := chart.NewTrend(series, box)
	s := Scene{Width: box.Width, Height: box.Height}
	if t.NoData {
		s.Add(Text{Label: t.Placeholder, Size: 14, Color: pal.MutedForeground})
		return s
	}
	grid := Style{Stroke: pal.Border, StrokeWidth: 1, Dash: []float64{4, 4}}
	for _, l := range t.Grid {
		s.Add(Path{Path: chart.Polyline([]chart.Point{l.From, l.To}), Style: grid})
	}
	s.Add(Path{Path: t.Path, Style: Style{Stroke: col, StrokeWidth: 3, RoundCap: true}})
	for _, p := range t.Points {
		s.Add(Circle{Center: p, Radius: 4, Style: Style{Fill: col}})
	}
	for _, l := range t.Labels {
		s.Add(Text{Label: l, Size: 10, Color: pal.MutedForeground})
	}
	return s
}

// Sleep returns the nightly sleep bar chart. An empty series gives an
// empty scene.
func Sleep(series metric.Series, width, height float64) Scene {
	s := Scene{Width: width, Height: height}
	for _, r := range chart.SleepBars(series, width, height) {
		s.Add(Rect{Rect: r, Radius: 2, Style: Style{Fill: theme.Sleep, Opacity: 0.7}})
	}
	return s
}

// Ring returns a circular progress indicator for percentage.
func Ring(percentage, size, strokeWidth float64, col color.NRGBA, pal theme.Palette) Scene {
	r := chart.NewRing(percentage, size, strokeWidth)
	s := Scene{Width: size, Height: size}
	s.Add(Circle{Center: r.Center, Radius: r.Radius, Style: Style{Stroke: pal.Border, StrokeWidth: strokeWidth}})
	if p := r.Progress(); p.Sweep > 0 {
		s.Add(Path{Path: p.Path(), Style: Style{Stroke: col, StrokeWidth: strokeWidth, RoundCap: true}})
	}
	return s
}
