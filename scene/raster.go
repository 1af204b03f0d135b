// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/kortschak/vitals/chart"
)

// Raster renders s into an image with each scene unit covering
// scale pixels. Text is drawn with a fixed 7x13 bitmap face.
func (s Scene) Raster(scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid raster scale: %v", scale)
	}
	w := int(math.Ceil(s.Width * scale))
	h := int(math.Ceil(s.Height * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size: %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	if s.Background.A != 0 {
		dc.SetColor(s.Background)
		dc.Clear()
	}
	dc.Scale(scale, scale)
	dc.SetFontFace(basicfont.Face7x13)
	for _, sh := range s.Shapes {
		switch sh := sh.(type) {
		case Path:
			trace(dc, sh.Path)
			draw(dc, sh.Style)
		case Circle:
			dc.DrawCircle(sh.Center.X, sh.Center.Y, sh.Radius)
			draw(dc, sh.Style)
		case Rect:
			if sh.Radius > 0 {
				dc.DrawRoundedRectangle(sh.X, sh.Y, sh.W, sh.H, sh.Radius)
			} else {
				dc.DrawRectangle(sh.X, sh.Y, sh.W, sh.H)
			}
			draw(dc, sh.Style)
		case Text:
			dc.SetColor(sh.Color)
			dc.DrawStringAnchored(sh.Text, sh.Pos.X, sh.Pos.Y, 0.5, 0.5)
		default:
			return nil, fmt.Errorf("unknown shape type: %T", sh)
		}
	}
	return dc.Image(), nil
}

// WritePNG writes the raster of s at the given scale as a PNG image.
func (s Scene) WritePNG(w io.Writer, scale float64) error {
	img, err := s.Raster(scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func trace(dc *gg.Context, p chart.Path) {
	for _, seg := range p {
		switch seg.Op {
		case chart.MoveTo:
			dc.MoveTo(seg.Pts[0].X, seg.Pts[0].Y)
		case chart.LineTo:
			dc.LineTo(seg.Pts[0].X, seg.Pts[0].Y)
		case chart.CubeTo:
			c0, c1, to := seg.Pts[0], seg.Pts[1], seg.Pts[2]
			dc.CubicTo(c0.X, c0.Y, c1.X, c1.Y, to.X, to.Y)
		}
	}
}

func draw(dc *gg.Context, s Style) {
	if s.Filled() {
		dc.SetColor(s.FillColor())
		if s.Stroked() {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if !s.Stroked() {
		dc.ClearPath()
		return
	}
	dc.SetColor(s.StrokeColor())
	dc.SetLineWidth(s.StrokeWidth)
	if s.RoundCap {
		dc.SetLineCap(gg.LineCapRound)
	} else {
		dc.SetLineCap(gg.LineCapButt)
	}
	dc.SetDash(s.Dash...)
	dc.Stroke()
}
