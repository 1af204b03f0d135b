// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart maps health readings onto vector drawing primitives.
//
// All functions in the package are pure and total: degenerate input
// such as empty series or zero sized boxes yields empty or placeholder
// geometry rather than an error. Coordinates follow screen conventions,
// with y growing downwards and angles measured clockwise from the
// positive x axis.
package chart

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in drawing space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Op is a path drawing command.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	CubeTo Op = 'C'
)

// Segment is a single path command. MoveTo and LineTo segments hold
// one point; CubeTo segments hold two control points followed by the
// end point.
type Segment struct {
	Op  Op
	Pts []Point
}

// End returns the anchor point reached by the segment.
func (s Segment) End() Point { return s.Pts[len(s.Pts)-1] }

// Path is a sequence of drawing commands.
type Path []Segment

// Move appends a MoveTo command.
func (p *Path) Move(to Point) { *p = append(*p, Segment{Op: MoveTo, Pts: []Point{to}}) }

// Line appends a LineTo command.
func (p *Path) Line(to Point) { *p = append(*p, Segment{Op: LineTo, Pts: []Point{to}}) }

// Cube appends a CubeTo command.
func (p *Path) Cube(ctrl0, ctrl1, to Point) {
	*p = append(*p, Segment{Op: CubeTo, Pts: []Point{ctrl0, ctrl1, to}})
}

// Anchors returns the end points of every command in p.
func (p Path) Anchors() []Point {
	a := make([]Point, len(p))
	for i, s := range p {
		a[i] = s.End()
	}
	return a
}

// String returns the SVG path data for p.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		for j, pt := range s.Pts {
			if j != 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(Num(pt.X))
			b.WriteByte(' ')
			b.WriteString(Num(pt.Y))
		}
	}
	return b.String()
}

// Polyline returns a path visiting pts in order.
func Polyline(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts))
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	return p
}

// Num formats v for drawing output with at most three decimal places.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Line is a straight line segment.
type Line struct {
	From, To Point
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Label is a text label anchored at its horizontal centre.
type Label struct {
	Text string
	Pos  Point
}

// Arc is a circular arc. Start and Sweep are in degrees; zero is
// three o'clock and positive sweeps run clockwise on screen.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// At returns the point on the arc's circle at angle deg.
func (a Arc) At(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return a.Radius * math.Abs(a.Sweep) * math.Pi / 180
}

// Path returns a cubic Bézier approximation of the arc using at most
// a quarter turn per segment.
func (a Arc) Path() Path {
	var p Path
	p.Move(a.At(a.Start))
	n := int(math.Ceil(math.Abs(a.Sweep) / 90))
	if n == 0 {
		return p
	}
	step := a.Sweep / float64(n) * math.Pi / 180
	k := 4.0 / 3 * math.Tan(step/4) * a.Radius
	a0 := a.Start * math.Pi / 180
	for range n {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		p0 := Point{X: a.Center.X + a.Radius*cos0, Y: a.Center.Y + a.Radius*sin0}
		p3 := Point{X: a.Center.X + a.Radius*cos1, Y: a.Center.Y + a.Radius*sin1}
		p.Cube(
			Point{X: p0.X - k*sin0, Y: p0.Y + k*cos0},
			Point{X: p3.X + k*sin1, Y: p3.Y - k*cos1},
			p3,
		)
		a0 = a1
	}
	return p
}
