// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/kortschak/vitals/metric"

// Box is a drawing area with uniform padding around the plot.
type Box struct {
	Width, Height, Padding float64
}

// plot returns the extent of the plot area inside the padding.
func (b Box) plot() (w, h float64) {
	return b.Width - 2*b.Padding, b.Height - 2*b.Padding
}

// NoDataText is the placeholder shown for an empty trend.
const NoDataText = "No data available"

// GridRatios are the vertical fractions at which trend grid lines
// are drawn.
var GridRatios = [...]float64{0, 0.25, 0.5, 0.75, 1}

// Trend is the geometry of a smoothed time series chart.
type Trend struct {
	// NoData is set when the series was empty. Only
	// Placeholder is valid in that case.
	NoData      bool
	Placeholder Label

	Min, Max float64

	Points []Point
	Path   Path
	Grid   []Line
	Labels []Label
}

// NewTrend returns the trend chart geometry for s drawn in b.
//
// Points are spaced evenly across the plot area with a lone point at
// its centre. Values are scaled between the series minimum at the
// bottom and maximum at the top; when all values are equal they lie
// on the vertical centre line. Consecutive points are joined by cubic
// segments with control points a third of the way in from each end,
// level with the nearer point.
func NewTrend(s metric.Series, b Box) Trend {
	if len(s) == 0 {
		return Trend{
			NoData:      true,
			Placeholder: Label{Text: NoDataText, Pos: Point{X: b.Width / 2, Y: b.Height / 2}},
		}
	}

	lo, hi := s[0].Value, s[0].Value
	for _, r := range s[1:] {
		lo = min(lo, r.Value)
		hi = max(hi, r.Value)
	}
	span := hi - lo
	flat := span == 0
	if flat {
		span = 1
	}

	pw, ph := b.plot()
	bottom := b.Height - b.Padding
	t := Trend{
		Min:    lo,
		Max:    hi,
		Points: make([]Point, len(s)),
		Labels: make([]Label, len(s)),
		Grid:   make([]Line, len(GridRatios)),
	}
	for i, r := range s {
		x := b.Padding + pw/2
		if len(s) > 1 {
			x = b.Padding + float64(i)/float64(len(s)-1)*pw
		}
		f := 0.5
		if !flat {
			f = (r.Value - lo) / span
		}
		t.Points[i] = Point{X: x, Y: bottom - f*ph}
		t.Labels[i] = Label{Text: r.Date, Pos: Point{X: x, Y: b.Height - b.Padding/2}}
	}

	t.Path = make(Path, 0, len(t.Points))
	t.Path.Move(t.Points[0])
	for i, p1 := range t.Points[1:] {
		p0 := t.Points[i]
		dx := (p1.X - p0.X) / 3
		t.Path.Cube(Point{X: p0.X + dx, Y: p0.Y}, Point{X: p1.X - dx, Y: p1.Y}, p1)
	}

	for i, r := range GridRatios {
		y := bottom - r*ph
		t.Grid[i] = Line{From: Point{X: b.Padding, Y: y}, To: Point{X: b.Width - b.Padding, Y: y}}
	}
	return t
}
