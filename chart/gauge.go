// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/kortschak/vitals/theme"
)

// Domain is the value range covered by a gauge.
type Domain struct {
	Min, Max float64
}

// PressureDomain is the systolic blood pressure gauge range in mmHg.
var PressureDomain = Domain{Min: 80, Max: 180}

// Fraction clamps v into d and returns its position in [0, 1].
// An empty domain maps values at or below Min to 0 and all others to 1.
func (d Domain) Fraction(v float64) float64 {
	if v <= d.Min || math.IsNaN(v) {
		return 0
	}
	if v >= d.Max {
		return 1
	}
	return (v - d.Min) / (d.Max - d.Min)
}

const (
	gaugeInset  = 5
	needleRatio = 0.8
)

// Gauge is the geometry of a semicircular dial.
type Gauge struct {
	// Value is the raw reading.
	Value float64
	// Fraction is the clamped position of Value in the domain.
	Fraction float64
	// Angle is the needle angle in degrees from vertical, in
	// [-90, 90] with -90 at the low end of the dial.
	Angle float64

	Center Point
	Radius float64

	// Track spans the whole semicircle and Level spans the
	// Fraction of it from the low end.
	Track, Level Arc
	Needle       Line

	Status theme.Status
}

// NewGauge returns the gauge geometry for value v over d drawn in a
// width by height box. The dial hinge sits on the bottom edge of the
// box, inset by five units.
func NewGauge(v float64, d Domain, width, height float64) Gauge {
	f := d.Fraction(v)
	angle := -90 + f*180
	r := max(min(width, height)/2-gaugeInset, 0)
	c := Point{X: width / 2, Y: height - gaugeInset}

	track := Arc{Center: c, Radius: r, Start: 180, Sweep: 180}
	level := track
	level.Sweep = f * 180

	sin, cos := math.Sincos(angle * math.Pi / 180)
	n := r * needleRatio
	return Gauge{
		Value:    v,
		Fraction: f,
		Angle:    angle,
		Center:   c,
		Radius:   r,
		Track:    track,
		Level:    level,
		Needle:   Line{From: c, To: Point{X: c.X + n*sin, Y: c.Y - n*cos}},
		Status:   PressureStatus(v),
	}
}

// PressureStatus classifies a systolic pressure reading.
func PressureStatus(v float64) theme.Status {
	switch {
	case v < 90:
		return theme.StatusInfo
	case v <= 120:
		return theme.StatusSuccess
	case v <= 140:
		return theme.StatusWarning
	default:
		return theme.StatusError
	}
}
