// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/theme"
)

// AppointmentStatus is the booking state of an appointment.
type AppointmentStatus string

const (
	Upcoming  AppointmentStatus = "upcoming"
	Completed AppointmentStatus = "completed"
	Cancelled AppointmentStatus = "cancelled"
)

// Status returns the semantic status used to colour s, and false
// for an unknown status.
func (s AppointmentStatus) Status() (theme.Status, bool) {
	switch s {
	case Upcoming:
		return theme.StatusInfo, true
	case Completed:
		return theme.StatusSuccess, true
	case Cancelled:
		return theme.StatusError, true
	default:
		return 0, false
	}
}

// Readings returns the history of every metric.
func (d *Data) Readings() metric.Series {
	s := make(metric.Series, 0, len(d.Vitals.PastReadings)+len(d.DailyActivity.PastReadings))
	s = append(s, d.Vitals.PastReadings...)
	return append(s, d.DailyActivity.PastReadings...)
}

// current maps each metric to its current reading. It must have one
// entry per metric; the length check below fails compilation when a
// metric is added without one.
var current = [...]func(*Data) string{
	metric.HeartRate:     func(d *Data) string { return d.Vitals.HeartRate },
	metric.BloodPressure: func(d *Data) string { return d.Vitals.BloodPressure },
	metric.BloodOxygen:   func(d *Data) string { return d.Vitals.BloodOxygen },
	metric.Steps:         func(d *Data) string { return d.DailyActivity.Steps },
	metric.Sleep:         func(d *Data) string { return d.DailyActivity.SleepHours },
	metric.Calories:      func(d *Data) string { return d.DailyActivity.CaloriesBurnt },
}

var _ [len(metric.All)]struct{} = [len(current)]struct{}{}

// Current returns the display value of the current reading for m, or
// the empty string if m is not a defined metric.
func (d *Data) Current(m metric.Metric) string {
	if int(m) >= len(current) {
		return ""
	}
	return current[m](d)
}

// CurrentValue returns the numeric part of the current reading for m.
// For blood pressure this is the systolic value.
func (d *Data) CurrentValue(m metric.Metric) (float64, error) {
	return Number(d.Current(m))
}

// Recommendation returns the advice text for m, if any.
func (d *Data) Recommendation(m metric.Metric) string {
	if r, ok := d.Vitals.Recommendations[m]; ok {
		return r
	}
	return d.DailyActivity.Recommendations[m]
}

// StepProgress returns today's steps as a percentage of the step goal.
// The result is not clamped.
func (d *Data) StepProgress() (float64, error) {
	steps, err := Number(d.DailyActivity.Steps)
	if err != nil {
		return 0, err
	}
	if d.DailyActivity.StepGoal <= 0 {
		return 0, fmt.Errorf("invalid step goal: %v", d.DailyActivity.StepGoal)
	}
	return steps / d.DailyActivity.StepGoal * 100, nil
}

// AppointmentsWith returns the appointments with the given status
// whose doctor or specialty contains query, ignoring case.
func (d *Data) AppointmentsWith(status AppointmentStatus, query string) []Appointment {
	var a []Appointment
	for _, apt := range d.Appointments {
		if apt.Status != status {
			continue
		}
		if !contains(apt.Doctor, query) && !contains(apt.Specialty, query) {
			continue
		}
		a = append(a, apt)
	}
	return a
}

// Medicines returns the marketplace items whose frequently bought
// flag matches frequent and whose name contains query, ignoring case.
func (d *Data) Medicines(frequent bool, query string) []Medicine {
	var m []Medicine
	for _, med := range d.Ecommerce.Medicines {
		if med.FrequentlyBought == frequent && contains(med.Name, query) {
			m = append(m, med)
		}
	}
	return m
}

// Medicine returns the marketplace item with the given id.
func (d *Data) Medicine(id int) (Medicine, bool) {
	for _, med := range d.Ecommerce.Medicines {
		if med.ID == id {
			return med, true
		}
	}
	return Medicine{}, false
}

// Prescriptions returns the user's prescriptions.
func (d *Data) Prescriptions() []Prescription {
	return d.User.Prescriptions
}

// Prescription returns the prescription with the given id.
func (d *Data) Prescription(id int) (Prescription, bool) {
	for _, p := range d.User.Prescriptions {
		if p.ID == id {
			return p, true
		}
	}
	return Prescription{}, false
}

// Quote returns the i'th quote, cycling through the available quotes.
func (d *Data) Quote(i int) Quote {
	if len(d.Quotes) == 0 {
		return Quote{}
	}
	i %= len(d.Quotes)
	if i < 0 {
		i += len(d.Quotes)
	}
	return d.Quotes[i]
}

// RecentEmergencies returns at most n of the most recent emergencies.
func (d *Data) RecentEmergencies(n int) []Emergency {
	return d.Emergencies[:min(max(n, 0), len(d.Emergencies))]
}

func contains(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(query)))
}

// Number returns the leading number of a display label such as
// "8,432", "98%", "$4.99" or "118/76 mmHg". Thousands separators are
// ignored and a leading currency sign is skipped.
func Number(label string) (float64, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimPrefix(s, "$")
	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != ',' && r != '-'
	})
	if end >= 0 {
		s = s[:end]
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("no number in %q: %w", label, err)
	}
	return v, nil
}
