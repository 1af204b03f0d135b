// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"reflect"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

var pathStringTests = []struct {
	name string
	path func() Path
	want string
}{
	{
		name: "empty",
		path: func() Path { return nil },
		want: "",
	},
	{
		name: "polyline",
		path: func() Path { return Polyline([]Point{{0, 20}, {20, 20}, {25, 36}}) },
		want: "M 0 20 L 20 20 L 25 36",
	},
	{
		name: "cubic",
		path: func() Path {
			var p Path
			p.Move(Pt(40, 110))
			p.Cube(Pt(76.667, 110), Pt(113.333, 40), Pt(150, 40))
			return p
		},
		want: "M 40 110 C 76.667 110, 113.333 40, 150 40",
	},
	{
		name: "rounding",
		path: func() Path {
			var p Path
			p.Move(Pt(1.0/3, -0.0001))
			return p
		},
		want: "M 0.333 0",
	},
}

func TestPathString(t *testing.T) {
	for _, test := range pathStringTests {
		t.Run(test.name, func(t *testing.T) {
			got := test.path().String()
			if got != test.want {
				t.Errorf("unexpected path:\ngot: %q\nwant:%q", got, test.want)
			}
		})
	}
}

func TestArcPath(t *testing.T) {
	a := Arc{Center: Pt(50, 50), Radius: 10, Start: 180, Sweep: 180}
	p := a.Path()
	if len(p) != 3 {
		t.Fatalf("unexpected number of segments: got:%d want:3", len(p))
	}
	want := []Point{{40, 50}, {50, 40}, {60, 50}}
	for i, got := range p.Anchors() {
		if !nearPoint(got, want[i]) {
			t.Errorf("unexpected anchor %d: got:%v want:%v", i, got, want[i])
		}
	}
	if !near(a.Length(), 10*math.Pi) {
		t.Errorf("unexpected arc length: got:%v want:%v", a.Length(), 10*math.Pi)
	}

	empty := Arc{Center: Pt(1, 1), Radius: 1}.Path()
	if len(empty) != 1 || empty[0].Op != MoveTo {
		t.Errorf("unexpected empty arc path: %v", empty)
	}
}

func TestPolyline(t *testing.T) {
	if Polyline(nil) != nil {
		t.Error("expected nil path for no points")
	}
	pts := []Point{{1, 2}, {3, 4}}
	got := Polyline(pts).Anchors()
	if !reflect.DeepEqual(got, pts) {
		t.Errorf("unexpected anchors: got:%v want:%v", got, pts)
	}
}
