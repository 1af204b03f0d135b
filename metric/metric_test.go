// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"encoding/json"
	"errors"
	"image/color"
	"reflect"
	"testing"
)

func TestTableTotal(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range All {
		info := m.Info()
		if info.Label == "" || info.Icon == "" || info.Unit == "" || info.Color == (color.NRGBA{}) {
			t.Errorf("incomplete info for %v: %+v", m, info)
		}
		if seen[info.Label] {
			t.Errorf("duplicate label %q", info.Label)
		}
		seen[info.Label] = true
	}
}

func TestParse(t *testing.T) {
	for _, m := range All {
		got, err := Parse(m.Label())
		if err != nil {
			t.Errorf("unexpected error parsing %q: %v", m.Label(), err)
		}
		if got != m {
			t.Errorf("unexpected metric for %q: got:%v want:%v", m.Label(), got, m)
		}
	}
	_, err := Parse("Glucose")
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got:%v", err)
	}
}

var formatTests = []struct {
	metric Metric
	value  float64
	want   string
}{
	{metric: HeartRate, value: 72, want: "72 bpm"},
	{metric: BloodOxygen, value: 98.5, want: "98.5%"},
	{metric: Sleep, value: 7.5, want: "7.5 hrs"},
	{metric: Steps, value: 8432, want: "8432 steps"},
}

func TestFormat(t *testing.T) {
	for _, test := range formatTests {
		got := test.metric.Format(test.value)
		if got != test.want {
			t.Errorf("unexpected format for %v %v: got:%q want:%q", test.metric, test.value, got, test.want)
		}
	}
}

func TestReadingJSON(t *testing.T) {
	const data = `[
		{"date":"Mon","value":72,"type":"Heart Rate","yesterdayValue":70},
		{"date":"Mon","value":7.5,"type":"Sleep"},
		{"date":"Tue","value":75,"type":"Heart Rate"}
	]`
	var s Series
	err := json.Unmarshal([]byte(data), &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Filter(HeartRate)
	yesterday := 70.0
	want := Series{
		{Date: "Mon", Value: 72, Type: HeartRate, Yesterday: &yesterday},
		{Date: "Tue", Value: 75, Type: HeartRate},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected filtered series:\ngot: %#v\nwant:%#v", got, want)
	}

	err = json.Unmarshal([]byte(`[{"date":"Mon","value":1,"type":"Mood"}]`), &s)
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got:%v", err)
	}
}

var statsTests = []struct {
	name   string
	series Series
	want   Stats
}{
	{
		name: "empty",
		want: Stats{},
	},
	{
		name:   "single",
		series: Series{{Value: 7}},
		want:   Stats{Average: 7, Max: 7, Min: 7},
	},
	{
		name:   "rounded_average",
		series: Series{{Value: 70}, {Value: 71}, {Value: 75}},
		want:   Stats{Average: 72, Max: 75, Min: 70},
	},
}

func TestStats(t *testing.T) {
	for _, test := range statsTests {
		t.Run(test.name, func(t *testing.T) {
			got := test.series.Stats()
			if got != test.want {
				t.Errorf("unexpected stats: got:%+v want:%+v", got, test.want)
			}
		})
	}
}
