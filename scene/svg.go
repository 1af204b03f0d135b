// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/theme"
)

// WriteSVG writes s as a standalone SVG document.
func (s Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := chart.Num
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		n(s.Width), n(s.Height))
	if s.Background.A != 0 {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%"%s/>`+"\n", paint("fill", s.Background))
	}
	for _, sh := range s.Shapes {
		switch sh := sh.(type) {
		case Path:
			fmt.Fprintf(bw, `<path d="%s"%s/>`+"\n", sh.Path, style(sh.Style))
		case Circle:
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
				n(sh.Center.X), n(sh.Center.Y), n(sh.Radius), style(sh.Style))
		case Rect:
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s"`, n(sh.X), n(sh.Y), n(sh.W), n(sh.H))
			if sh.Radius > 0 {
				fmt.Fprintf(bw, ` rx="%s"`, n(sh.Radius))
			}
			fmt.Fprintf(bw, "%s/>\n", style(sh.Style))
		case Text:
			fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle"%s>`,
				n(sh.Pos.X), n(sh.Pos.Y), n(sh.Size), paint("fill", sh.Color))
			xml.EscapeText(bw, []byte(sh.Text))
			bw.WriteString("</text>\n")
		default:
			return fmt.Errorf("unknown shape type: %T", sh)
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func style(s Style) string {
	var b strings.Builder
	if s.Filled() {
		b.WriteString(paint("fill", s.FillColor()))
	} else {
		b.WriteString(` fill="none"`)
	}
	if s.Stroked() {
		b.WriteString(paint("stroke", s.StrokeColor()))
		fmt.Fprintf(&b, ` stroke-width="%s"`, chart.Num(s.StrokeWidth))
		if s.RoundCap {
			b.WriteString(` stroke-linecap="round"`)
		}
		if len(s.Dash) != 0 {
			d := make([]string, len(s.Dash))
			for i, v := range s.Dash {
				d[i] = chart.Num(v)
			}
			fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(d, ","))
		}
	}
	return b.String()
}

func paint(attr string, c color.NRGBA) string {
	s := fmt.Sprintf(` %s="%s"`, attr, theme.Hex(c))
	if c.A != 0xff {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, chart.Num(float64(c.A)/0xff))
	}
	return s
}
