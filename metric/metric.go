// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metric defines the health metrics shown by vitals and the
// readings recorded for them.
package metric

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/kortschak/vitals/theme"
)

// Metric is a kind of health observation.
type Metric uint8

//go:generate go tool golang.org/x/tools/cmd/stringer -type Metric
const (
	HeartRate Metric = iota
	BloodPressure
	BloodOxygen
	Steps
	Sleep
	Calories

	numMetrics
)

// All is the set of metrics in display order.
var All = [numMetrics]Metric{HeartRate, BloodPressure, BloodOxygen, Steps, Sleep, Calories}

// Info holds the presentation attributes of a metric.
type Info struct {
	Label string      // display name, also the dataset type tag
	Icon  string      // feather icon name
	Unit  string      // unit suffix
	Color color.NRGBA // accent colour
}

// table must have exactly one entry per metric; the length check
// below fails compilation when a metric is added without one.
var table = [...]Info{
	HeartRate:     {Label: "Heart Rate", Icon: "heart", Unit: "bpm", Color: theme.HeartRate},
	BloodPressure: {Label: "Blood Pressure", Icon: "activity", Unit: "mmHg", Color: theme.BloodPressure},
	BloodOxygen:   {Label: "Blood Oxygen", Icon: "wind", Unit: "%", Color: theme.BloodOxygen},
	Steps:         {Label: "Steps", Icon: "footprints", Unit: "steps", Color: theme.Steps},
	Sleep:         {Label: "Sleep", Icon: "moon", Unit: "hrs", Color: theme.Sleep},
	Calories:      {Label: "Calories", Icon: "zap", Unit: "kcal", Color: theme.Calories},
}

var _ [numMetrics]struct{} = [len(table)]struct{}{}

// Info returns the presentation attributes of m. It panics if m is
// not a defined metric.
func (m Metric) Info() Info { return table[m] }

// Label returns the display name of m.
func (m Metric) Label() string { return table[m].Label }

// Color returns the accent colour of m.
func (m Metric) Color() color.NRGBA { return table[m].Color }

// Format renders v with the unit of m.
func (m Metric) Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	switch m {
	case BloodOxygen:
		return s + table[m].Unit
	default:
		return s + " " + table[m].Unit
	}
}

// ErrUnknownMetric is returned when a label does not name a metric.
var ErrUnknownMetric = errors.New("unknown metric")

// Parse returns the metric with the given display label.
func Parse(label string) (Metric, error) {
	for m, info := range table {
		if info.Label == label {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, label)
}

func (m Metric) MarshalText() ([]byte, error) {
	if m >= numMetrics {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, m)
	}
	return []byte(table[m].Label), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
