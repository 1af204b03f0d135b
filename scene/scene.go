// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene composes chart geometry into styled shapes that can be
// drawn by any back end. SVG and PNG encoders are provided here; the
// Gio renderer lives with the application.
package scene

import (
	"image/color"

	"github.com/kortschak/vitals/chart"
)

// Scene is a list of shapes drawn in order over a Width by Height
// canvas.
type Scene struct {
	Width, Height float64
	Background    color.NRGBA
	Shapes        []Shape
}

// Add appends shapes to s.
func (s *Scene) Add(shapes ...Shape) { s.Shapes = append(s.Shapes, shapes...) }

// Shape is one of Path, Circle, Rect or Text.
type Shape interface {
	shape()
}

// Style describes how a shape is painted. A zero alpha stroke or fill
// is not drawn.
type Style struct {
	Stroke      color.NRGBA
	StrokeWidth float64
	Fill        color.NRGBA
	Dash        []float64
	RoundCap    bool
	// Opacity scales the alpha of stroke and fill. Zero
	// means opaque.
	Opacity float64
}

// StrokeColor returns the stroke colour with Opacity applied.
func (s Style) StrokeColor() color.NRGBA { return s.apply(s.Stroke) }

// FillColor returns the fill colour with Opacity applied.
func (s Style) FillColor() color.NRGBA { return s.apply(s.Fill) }

func (s Style) apply(c color.NRGBA) color.NRGBA {
	if s.Opacity <= 0 || s.Opacity >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*s.Opacity + 0.5)
	return c
}

// Stroked reports whether the style draws an outline.
func (s Style) Stroked() bool { return s.Stroke.A != 0 && s.StrokeWidth > 0 }

// Filled reports whether the style fills the shape.
func (s Style) Filled() bool { return s.Fill.A != 0 }

// Path is an arbitrary path.
type Path struct {
	Path chart.Path
	Style
}

// Circle is a circle.
type Circle struct {
	Center chart.Point
	Radius float64
	Style
}

// Rect is a rectangle with optionally rounded corners.
type Rect struct {
	chart.Rect
	Radius float64
	Style
}

// Text is a single line label centred on its position.
type Text struct {
	chart.Label
	Size  float64
	Color color.NRGBA
}

func (Path) shape()   {}
func (Circle) shape() {}
func (Rect) shape()   {}
func (Text) shape()   {}
