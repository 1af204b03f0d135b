// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/scene"
)

// sceneWidget lays out a scene in dp units at its natural size.
type sceneWidget struct {
	th *material.Theme
	s  scene.Scene
	// reveal, when in [0, 1), clips the scene to that fraction of
	// its width.
	reveal float64
}

func drawScene(th *material.Theme, s scene.Scene) sceneWidget {
	return sceneWidget{th: th, s: s, reveal: 1}
}

func (w sceneWidget) Layout(gtx layout.Context) layout.Dimensions {
	k := gtx.Metric.PxPerDp
	size := image.Pt(int(math.Ceil(w.s.Width*float64(k))), int(math.Ceil(w.s.Height*float64(k))))
	defer clip.Rect{Max: image.Pt(int(float64(size.X)*clamp01(w.reveal)), size.Y)}.Push(gtx.Ops).Pop()

	if w.s.Background.A != 0 {
		paint.FillShape(gtx.Ops, w.s.Background, clip.Rect{Max: size}.Op())
	}
	pt := func(p chart.Point) f32.Point {
		return f32.Pt(float32(p.X)*k, float32(p.Y)*k)
	}
	for _, sh := range w.s.Shapes {
		switch sh := sh.(type) {
		case scene.Path:
			p := sh.Path
			if sh.Dash != nil {
				p = dashed(p, sh.Dash)
			}
			fillStroke(gtx.Ops, sh.Style, k, func() clip.PathSpec { return pathSpec(gtx.Ops, p, pt) })
		case scene.Circle:
			circle := chart.Arc{Center: sh.Center, Radius: sh.Radius, Sweep: 360}.Path()
			fillStroke(gtx.Ops, sh.Style, k, func() clip.PathSpec { return pathSpec(gtx.Ops, circle, pt) })
		case scene.Rect:
			tl := pt(chart.Pt(sh.X, sh.Y))
			br := pt(chart.Pt(sh.X+sh.W, sh.Y+sh.H))
			rr := clip.UniformRRect(image.Rectangle{
				Min: image.Pt(int(tl.X), int(tl.Y)),
				Max: image.Pt(int(math.Ceil(float64(br.X))), int(math.Ceil(float64(br.Y)))),
			}, int(float32(sh.Radius)*k))
			fillStroke(gtx.Ops, sh.Style, k, func() clip.PathSpec { return rr.Path(gtx.Ops) })
		case scene.Text:
			drawLabel(gtx, w.th, sh, pt(sh.Pos))
		}
	}
	return layout.Dimensions{Size: size}
}

func fillStroke(ops *op.Ops, s scene.Style, k float32, spec func() clip.PathSpec) {
	if s.Filled() {
		paint.FillShape(ops, s.FillColor(), clip.Outline{Path: spec()}.Op())
	}
	if s.Stroked() {
		paint.FillShape(ops, s.StrokeColor(), clip.Stroke{Path: spec(), Width: float32(s.StrokeWidth) * k}.Op())
	}
}

func pathSpec(ops *op.Ops, p chart.Path, pt func(chart.Point) f32.Point) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	for _, s := range p {
		switch s.Op {
		case chart.MoveTo:
			path.MoveTo(pt(s.End()))
		case chart.LineTo:
			path.LineTo(pt(s.End()))
		case chart.CubeTo:
			path.CubeTo(pt(s.Pts[0]), pt(s.Pts[1]), pt(s.Pts[2]))
		}
	}
	return path.End()
}

// dashed splits the straight segments of p into dashes following the
// on/off lengths of pattern. Curves are kept whole.
func dashed(p chart.Path, pattern []float64) chart.Path {
	var total float64
	for _, v := range pattern {
		if v < 0 {
			return p
		}
		total += v
	}
	if total <= 0 {
		return p
	}
	var (
		out chart.Path
		pen chart.Point
	)
	for _, s := range p {
		switch s.Op {
		case chart.LineTo:
			to := s.End()
			dx, dy := to.X-pen.X, to.Y-pen.Y
			length := math.Hypot(dx, dy)
			at := func(d float64) chart.Point {
				return chart.Pt(pen.X+dx*d/length, pen.Y+dy*d/length)
			}
			for d, i := 0.0, 0; d < length; i++ {
				n := min(d+pattern[i%len(pattern)], length)
				if i%2 == 0 {
					out.Move(at(d))
					out.Line(at(n))
				}
				d = n
			}
		case chart.CubeTo:
			out.Move(pen)
			out = append(out, s)
		}
		pen = s.End()
	}
	return out
}

func drawLabel(gtx layout.Context, th *material.Theme, t scene.Text, at f32.Point) {
	l := material.Label(th, unit.Sp(float32(t.Size)), t.Text)
	l.Color = t.Color
	l.MaxLines = 1

	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := l.Layout(gtx)
	call := macro.Stop()

	off := image.Pt(int(at.X)-dims.Size.X/2, int(at.Y)-dims.Size.Y/2)
	defer op.Offset(off).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}
