// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/theme"
)

func TestExport(t *testing.T) {
	data, err := mock.Load()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, export(dir, data, theme.For(true), zap.NewNop()))

	for _, m := range metric.All {
		for _, ext := range []string{".svg", ".png"} {
			path := filepath.Join(dir, slug(m.Label())+"-trend"+ext)
			fi, err := os.Stat(path)
			require.NoError(t, err, path)
			assert.NotZero(t, fi.Size(), path)
		}
	}
	_, err = os.Stat(filepath.Join(dir, "calories-card.svg"))
	assert.True(t, os.IsNotExist(err), "calories has no card visual")

	svg, err := os.ReadFile(filepath.Join(dir, "blood-pressure-card.svg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg"))
	assert.Contains(t, string(svg), theme.Hex(theme.StatusSuccess.Color()), "118 mmHg is normal")
}

func TestCardVisual(t *testing.T) {
	data, err := mock.Load()
	require.NoError(t, err)
	pal := theme.For(false)

	for _, m := range metric.All {
		s, err := cardVisual(data, m, pal)
		require.NoError(t, err, m)
		if m == metric.Calories {
			assert.Empty(t, s.Shapes)
			continue
		}
		assert.NotEmpty(t, s.Shapes, m)
	}

	data.DailyActivity.Steps = "many"
	_, err = cardVisual(data, metric.Steps, pal)
	assert.Error(t, err)
	_, err = allScenes(data, pal)
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "heart-rate", slug(metric.HeartRate.Label()))
	assert.Equal(t, "steps", slug(metric.Steps.Label()))
}

func TestDashed(t *testing.T) {
	var p chart.Path
	p.Move(chart.Pt(0, 0))
	p.Line(chart.Pt(10, 0))

	got := dashed(p, []float64{4, 2})
	want := chart.Path{}
	want.Move(chart.Pt(0, 0))
	want.Line(chart.Pt(4, 0))
	want.Move(chart.Pt(6, 0))
	want.Line(chart.Pt(10, 0))
	assert.Equal(t, want, got)

	assert.Equal(t, p, dashed(p, []float64{0, 0}), "empty pattern")
	assert.Equal(t, p, dashed(p, []float64{-1, 2}), "negative pattern")
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, theme.StatusError, severity("critical"))
	assert.Equal(t, theme.StatusWarning, severity("major"))
	assert.Equal(t, theme.StatusInfo, severity("minor"))
}

func TestClamp01(t *testing.T) {
	for _, test := range []struct{ in, want float64 }{
		{-1, 0}, {0.25, 0.25}, {2, 1},
	} {
		assert.Equal(t, test.want, clamp01(test.in))
	}
}
