// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/theme"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	readings := d.Readings()
	for _, m := range metric.All {
		s := readings.Filter(m)
		assert.Len(t, s, 7, "history for %v", m)
		assert.NotEmpty(t, d.Current(m), "current value for %v", m)
		assert.NotEmpty(t, d.Recommendation(m), "recommendation for %v", m)
		_, err := d.CurrentValue(m)
		assert.NoError(t, err, "numeric value for %v", m)
	}
	systolic, err := d.CurrentValue(metric.BloodPressure)
	require.NoError(t, err)
	assert.Equal(t, 118.0, systolic)
	assert.NotEmpty(t, d.DailyActivity.SleepDetails.WeeklyPerformance)
	assert.NotEmpty(t, d.Location.Address)
	assert.Empty(t, d.Current(metric.Metric(200)), "undefined metric")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"vitals":{"pastReadings":[{"date":"Mon","value":1,"type":"Mood"}]}}`))
	assert.True(t, errors.Is(err, metric.ErrUnknownMetric), "got: %v", err)

	_, err = Decode(strings.NewReader(`{"surprise":true}`))
	assert.Error(t, err)
}

func TestNumber(t *testing.T) {
	for _, test := range []struct {
		label string
		want  float64
	}{
		{label: "8,432", want: 8432},
		{label: "98%", want: 98},
		{label: "$4.99", want: 4.99},
		{label: "118/76 mmHg", want: 118},
		{label: " 7.5 hrs", want: 7.5},
		{label: "1,840 kcal", want: 1840},
	} {
		got, err := Number(test.label)
		require.NoError(t, err, test.label)
		assert.Equal(t, test.want, got, test.label)
	}
	_, err := Number("n/a")
	assert.Error(t, err)
}

func TestAppointments(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	upcoming := d.AppointmentsWith(Upcoming, "")
	assert.Len(t, upcoming, 2)
	for _, a := range upcoming {
		assert.Equal(t, Upcoming, a.Status)
	}
	cardio := d.AppointmentsWith(Completed, "CARDIO")
	require.Len(t, cardio, 1)
	assert.Equal(t, "Dr. Priya Shah", cardio[0].Doctor)
	assert.Empty(t, d.AppointmentsWith(Upcoming, "nobody"))

	for status, want := range map[AppointmentStatus]theme.Status{
		Upcoming:  theme.StatusInfo,
		Completed: theme.StatusSuccess,
		Cancelled: theme.StatusError,
	} {
		got, ok := status.Status()
		assert.True(t, ok)
		assert.Equal(t, want, got, status)
	}
	_, ok := AppointmentStatus("pending").Status()
	assert.False(t, ok)
}

func TestMedicines(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	frequent := d.Medicines(true, "")
	other := d.Medicines(false, "")
	assert.Equal(t, len(d.Ecommerce.Medicines), len(frequent)+len(other))
	assert.Len(t, d.Medicines(true, "vitamin"), 1)

	m, ok := d.Medicine(3)
	assert.True(t, ok)
	assert.Equal(t, "Cetirizine 10 mg", m.Name)
	_, ok = d.Medicine(99)
	assert.False(t, ok)

	require.Len(t, d.Prescriptions(), 1)
	p, ok := d.Prescription(101)
	require.True(t, ok)
	assert.Equal(t, "Lisinopril 10 mg", p.Name)
	assert.Equal(t, "Dr. Priya Shah", p.Doctor)
	_, ok = d.Medicine(101)
	assert.False(t, ok, "prescriptions are not shop items")
	_, ok = d.Prescription(1)
	assert.False(t, ok)
}

func TestMisc(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.Equal(t, d.Quotes[0], d.Quote(len(d.Quotes)))
	assert.Equal(t, d.Quotes[len(d.Quotes)-1], d.Quote(-1))
	assert.Len(t, d.RecentEmergencies(3), 3)
	assert.Len(t, d.RecentEmergencies(100), len(d.Emergencies))
	assert.Empty(t, d.RecentEmergencies(-1))

	p, err := d.StepProgress()
	require.NoError(t, err)
	assert.InDelta(t, 84.32, p, 1e-9)
}
