// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"time"
)

// heartbeat is one stylised cardiac cycle as fractions of the
// drawing box.
var heartbeat = [...]Point{
	{X: 0, Y: 0.5},
	{X: 0.2, Y: 0.5},
	{X: 0.25, Y: 0.9},
	{X: 0.3, Y: 0.1},
	{X: 0.35, Y: 0.5},
	{X: 0.4, Y: 0.4},
	{X: 0.45, Y: 0.5},
	{X: 1, Y: 0.5},
}

// Heartbeat returns the cardiac cycle polyline scaled to a width by
// height box.
func Heartbeat(width, height float64) []Point {
	pts := make([]Point, len(heartbeat))
	for i, p := range heartbeat {
		pts[i] = Point{X: p.X * width, Y: p.Y * height}
	}
	return pts
}

// HeartbeatAt returns the vertical fraction of the cardiac cycle at
// the given phase. Phases outside [0, 1) wrap.
func HeartbeatAt(phase float64) float64 {
	phase -= math.Floor(phase)
	for i, p := range heartbeat[1:] {
		if phase > p.X {
			continue
		}
		q := heartbeat[i]
		return q.Y + (p.Y-q.Y)*(phase-q.X)/(p.X-q.X)
	}
	return heartbeat[len(heartbeat)-1].Y
}

// BeatPeriod returns the duration of one cardiac cycle at bpm beats
// per minute. It returns zero for non-positive rates.
func BeatPeriod(bpm float64) time.Duration {
	if bpm <= 0 || math.IsNaN(bpm) {
		return 0
	}
	return time.Duration(60 / bpm * float64(time.Second))
}

// Oxygen wave parameters.
const (
	OxygenStep      = 2
	OxygenCycles    = 3
	OxygenAmplitude = 0.3
)

// OxygenWave returns a sine wave sampled every OxygenStep units across
// a width by height box. A non-positive or non-finite width yields a
// single point on the midline.
func OxygenWave(width, height float64) Path {
	mid := height / 2
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		var p Path
		p.Move(Point{Y: mid})
		return p
	}
	amp := OxygenAmplitude * height
	p := make(Path, 0, int(width/OxygenStep)+1)
	for x := 0.0; x <= width; x += OxygenStep {
		pt := Point{X: x, Y: mid + amp*math.Sin(x/width*OxygenCycles*2*math.Pi)}
		if len(p) == 0 {
			p.Move(pt)
		} else {
			p.Line(pt)
		}
	}
	return p
}
