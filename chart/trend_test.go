// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strings"
	"testing"

	"github.com/kortschak/vitals/metric"
)

func series(values ...float64) metric.Series {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	s := make(metric.Series, len(values))
	for i, v := range values {
		s[i] = metric.Reading{Date: days[i%len(days)], Value: v, Type: metric.HeartRate}
	}
	return s
}

func TestTrendAscending(t *testing.T) {
	b := Box{Width: 300, Height: 150, Padding: 40}
	tr := NewTrend(series(10, 20, 30, 40, 50, 60, 70), b)
	if tr.NoData {
		t.Fatal("unexpected no data")
	}
	if len(tr.Path.Anchors()) != 7 {
		t.Errorf("unexpected number of anchors: got:%d want:7", len(tr.Path.Anchors()))
	}
	if n := strings.Count(tr.Path.String(), "M") + strings.Count(tr.Path.String(), "C"); n != 7 {
		t.Errorf("unexpected number of anchor commands in %q: got:%d want:7", tr.Path, n)
	}
	first, last := tr.Points[0], tr.Points[6]
	if first.Y <= last.Y {
		t.Errorf("expected first point below last: first:%v last:%v", first, last)
	}
	if !nearPoint(first, Pt(40, 110)) || !nearPoint(last, Pt(260, 40)) {
		t.Errorf("unexpected end points: first:%v last:%v", first, last)
	}
	if tr.Min != 10 || tr.Max != 70 {
		t.Errorf("unexpected range: [%v, %v]", tr.Min, tr.Max)
	}
}

func TestTrendControlPoints(t *testing.T) {
	tr := NewTrend(series(0, 10), Box{Width: 100, Height: 100, Padding: 10})
	if len(tr.Path) != 2 {
		t.Fatalf("unexpected path length: %d", len(tr.Path))
	}
	seg := tr.Path[1]
	if seg.Op != CubeTo {
		t.Fatalf("unexpected op: %c", seg.Op)
	}
	p0, p1 := tr.Points[0], tr.Points[1]
	want := []Point{
		{p0.X + (p1.X-p0.X)/3, p0.Y},
		{p1.X - (p1.X-p0.X)/3, p1.Y},
		p1,
	}
	for i := range want {
		if !nearPoint(seg.Pts[i], want[i]) {
			t.Errorf("unexpected control point %d: got:%v want:%v", i, seg.Pts[i], want[i])
		}
	}
}

func TestTrendSingle(t *testing.T) {
	b := Box{Width: 300, Height: 150, Padding: 40}
	tr := NewTrend(series(72), b)
	if len(tr.Points) != 1 || len(tr.Path) != 1 {
		t.Fatalf("expected a single point: points=%v path=%v", tr.Points, tr.Path)
	}
	if !nearPoint(tr.Points[0], Pt(150, 75)) {
		t.Errorf("unexpected point: got:%v want:(150, 75)", tr.Points[0])
	}
}

func TestTrendFlat(t *testing.T) {
	b := Box{Width: 300, Height: 150, Padding: 40}
	tr := NewTrend(series(5, 5, 5, 5), b)
	for i, p := range tr.Points {
		if !near(p.Y, b.Height/2) {
			t.Errorf("unexpected y for point %d: got:%v want:%v", i, p.Y, b.Height/2)
		}
	}
}

func TestTrendEmpty(t *testing.T) {
	tr := NewTrend(nil, Box{Width: 300, Height: 150, Padding: 40})
	if !tr.NoData {
		t.Error("expected no data")
	}
	if tr.Placeholder.Text != NoDataText {
		t.Errorf("unexpected placeholder: %q", tr.Placeholder.Text)
	}
	if tr.Path != nil || tr.Points != nil || tr.Grid != nil {
		t.Errorf("unexpected geometry for empty trend: %+v", tr)
	}
}

func TestTrendGridAndLabels(t *testing.T) {
	b := Box{Width: 300, Height: 150, Padding: 40}
	s := series(1, 2, 3)
	tr := NewTrend(s, b)
	wantY := []float64{110, 92.5, 75, 57.5, 40}
	if len(tr.Grid) != len(wantY) {
		t.Fatalf("unexpected number of grid lines: %d", len(tr.Grid))
	}
	for i, l := range tr.Grid {
		if !near(l.From.Y, wantY[i]) || !near(l.To.Y, wantY[i]) || l.From.X != 40 || l.To.X != 260 {
			t.Errorf("unexpected grid line %d: %+v", i, l)
		}
	}
	for i, l := range tr.Labels {
		if l.Text != s[i].Date {
			t.Errorf("unexpected label %d: got:%q want:%q", i, l.Text, s[i].Date)
		}
		if l.Pos.X != tr.Points[i].X || l.Pos.Y <= b.Height-b.Padding {
			t.Errorf("label %d not beneath its point: %v", i, l.Pos)
		}
	}
}
