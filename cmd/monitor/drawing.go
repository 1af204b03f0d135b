// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/kortschak/vitals/chart"
)

type subImager interface {
	draw.Image
	SubImage(image.Rectangle) image.Image
}

// subDrawImage returns a view of rect in img addressed from the
// origin.
func subDrawImage(img subImager, rect image.Rectangle) draw.Image {
	return drawOffset{
		Image:  img.SubImage(rect).(draw.Image),
		offset: rect.Min,
	}
}

type drawOffset struct {
	draw.Image
	offset image.Point
}

func (i drawOffset) Set(x, y int, c color.Color) {
	i.Image.Set(x+i.offset.X, y+i.offset.Y, c)
}

func (i drawOffset) At(x, y int) color.Color {
	return i.Image.At(x+i.offset.X, y+i.offset.Y)
}

func (i drawOffset) Bounds() image.Rectangle {
	return i.Image.Bounds().Sub(i.offset)
}

// curveSteps is the number of line segments used to flatten each
// cubic segment of a path.
const curveSteps = 8

// stroke draws p onto img with single pixel lines.
func stroke(img draw.Image, p chart.Path, c color.Color) {
	var pen chart.Point
	for _, s := range p {
		switch s.Op {
		case chart.MoveTo:
			pen = s.End()
		case chart.LineTo:
			line(img, round(pen.X), round(pen.Y), round(s.End().X), round(s.End().Y), c)
			pen = s.End()
		case chart.CubeTo:
			from := pen
			for i := 1; i <= curveSteps; i++ {
				to := cubic(from, s.Pts[0], s.Pts[1], s.Pts[2], float64(i)/curveSteps)
				line(img, round(pen.X), round(pen.Y), round(to.X), round(to.Y), c)
				pen = to
			}
		}
	}
}

func cubic(p0, p1, p2, p3 chart.Point, t float64) chart.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return chart.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func round(v float64) int { return int(math.Round(v)) }

func line(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for ; y0 <= y1; y0++ {
			img.Set(x0, y0, c)
		}
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for ; x0 <= x1; x0++ {
			img.Set(x0, y0, c)
		}
	default:
		bresenham(img, x0, y0, x1, y1, c)
	}
}

func bresenham(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	dx, sx := absSign(x1 - x0)
	dy, sy := absSign(y1 - y0)
	dy = -dy
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func absSign(a int) (abs, sign int) {
	if a < 0 {
		return -a, -1
	}
	return a, 1
}

func blank(img draw.Image) {
	b := img.Bounds()
	for x := range b.Dx() {
		for y := range b.Dy() {
			img.Set(x, y, color.White)
		}
	}
}

type displayShim struct {
	// ¯\_(ツ)_/¯
	img draw.Image
}

func (d displayShim) SetPixel(x, y int16, c color.RGBA) {
	d.img.Set(int(x), int(y), c)
}

func (d displayShim) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d displayShim) Display() error { return nil }
