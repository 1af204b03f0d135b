// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/kortschak/vitals/metric"
)

// BarGap is the horizontal space between sleep bars.
const BarGap = 2

// SleepBars returns bottom aligned bars for s in a width by height box,
// each scaled against the largest value. An empty series yields no bars
// and a series without a positive maximum yields flat bars. Negative
// values yield flat bars.
func SleepBars(s metric.Series, width, height float64) []Rect {
	if len(s) == 0 {
		return nil
	}
	top := s[0].Value
	for _, r := range s[1:] {
		top = max(top, r.Value)
	}
	w := max(width/float64(len(s))-BarGap, 0)
	bars := make([]Rect, len(s))
	for i, r := range s {
		var h float64
		if top > 0 {
			h = max(r.Value/top*height, 0)
		}
		bars[i] = Rect{X: float64(i) * (w + BarGap), Y: height - h, W: w, H: h}
	}
	return bars
}

// Ring is the geometry of a circular progress indicator. The ring is
// drawn with a dash of length Circumference offset by DashOffset,
// rotated by Rotation degrees about Center so that progress starts at
// twelve o'clock and runs clockwise.
type Ring struct {
	Percentage float64

	Center        Point
	Radius        float64
	StrokeWidth   float64
	Circumference float64
	DashOffset    float64
	Rotation      float64
}

// NewRing returns the ring geometry for percentage in a size by size
// box. The percentage is used as given; see ClampPercent.
func NewRing(percentage, size, strokeWidth float64) Ring {
	r := max((size-strokeWidth)/2, 0)
	c := 2 * math.Pi * r
	return Ring{
		Percentage:    percentage,
		Center:        Point{X: size / 2, Y: size / 2},
		Radius:        r,
		StrokeWidth:   strokeWidth,
		Circumference: c,
		DashOffset:    c * (1 - percentage/100),
		Rotation:      -90,
	}
}

// Progress returns the visible arc of the ring. Dash offsets beyond
// the circumference in either direction show nothing or the full ring.
func (r Ring) Progress() Arc {
	a := Arc{Center: r.Center, Radius: r.Radius, Start: r.Rotation}
	if r.Circumference > 0 {
		a.Sweep = 360 * min(max(1-r.DashOffset/r.Circumference, 0), 1)
	}
	return a
}

// Track returns the full background circle of the ring.
func (r Ring) Track() Arc {
	return Arc{Center: r.Center, Radius: r.Radius, Start: r.Rotation, Sweep: 360}
}

// ClampPercent limits p to [0, 100].
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return min(max(p, 0), 100)
}
