// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import "math"

// Reading is a single observation of a metric.
type Reading struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Type  Metric  `json:"type"`

	// Yesterday and PastDays are optional comparison values.
	Yesterday *float64 `json:"yesterdayValue,omitempty"`
	PastDays  *float64 `json:"pastDaysValue,omitempty"`
}

// Series is a chronologically ordered sequence of readings.
type Series []Reading

// Filter returns the readings of s with type m, preserving order.
func (s Series) Filter(m Metric) Series {
	var f Series
	for _, r := range s {
		if r.Type == m {
			f = append(f, r)
		}
	}
	return f
}

// Values returns the values of s in order.
func (s Series) Values() []float64 {
	v := make([]float64, len(s))
	for i, r := range s {
		v[i] = r.Value
	}
	return v
}

// Dates returns the date labels of s in order.
func (s Series) Dates() []string {
	d := make([]string, len(s))
	for i, r := range s {
		d[i] = r.Date
	}
	return d
}

// Latest returns the last reading of s and whether there was one.
func (s Series) Latest() (Reading, bool) {
	if len(s) == 0 {
		return Reading{}, false
	}
	return s[len(s)-1], true
}

// Stats is a summary of a series.
type Stats struct {
	Average float64 // rounded to the nearest integer
	Max     float64
	Min     float64
}

// Stats returns the summary of s. All fields are zero for an
// empty series.
func (s Series) Stats() Stats {
	if len(s) == 0 {
		return Stats{}
	}
	st := Stats{Max: s[0].Value, Min: s[0].Value}
	var sum float64
	for _, r := range s {
		sum += r.Value
		st.Max = max(st.Max, r.Value)
		st.Min = min(st.Min, r.Value)
	}
	st.Average = math.Round(sum / float64(len(s)))
	return st
}
