// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/theme"
)

func week(m metric.Metric, values ...float64) metric.Series {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	s := make(metric.Series, len(values))
	for i, v := range values {
		s[i] = metric.Reading{Date: days[i%len(days)], Value: v, Type: m}
	}
	return s
}

func TestGaugeScene(t *testing.T) {
	s := Gauge(150, 100, 40, theme.Light)
	require.Len(t, s.Shapes, 4)
	level, ok := s.Shapes[1].(Path)
	require.True(t, ok)
	assert.Equal(t, theme.StatusError.Color(), level.Stroke)
	track := s.Shapes[0].(Path)
	assert.Equal(t, theme.Light.Border, track.Stroke)
}

func TestTrendScene(t *testing.T) {
	box := chart.Box{Width: 300, Height: 150, Padding: 40}
	s := Trend(week(metric.HeartRate, 70, 72, 68), box, theme.HeartRate, theme.Dark)
	var paths, circles, texts int
	for _, sh := range s.Shapes {
		switch sh.(type) {
		case Path:
			paths++
		case Circle:
			circles++
		case Text:
			texts++
		}
	}
	assert.Equal(t, len(chart.GridRatios)+1, paths)
	assert.Equal(t, 3, circles)
	assert.Equal(t, 3, texts)

	empty := Trend(nil, box, theme.HeartRate, theme.Dark)
	require.Len(t, empty.Shapes, 1)
	assert.Equal(t, chart.NoDataText, empty.Shapes[0].(Text).Text)
}

func TestSleepScene(t *testing.T) {
	assert.Empty(t, Sleep(nil, 100, 40).Shapes)
	s := Sleep(week(metric.Sleep, 7, 6.5, 8), 100, 40)
	require.Len(t, s.Shapes, 3)
	bar := s.Shapes[2].(Rect)
	assert.InDelta(t, 40, bar.H, 1e-9)
	assert.InDelta(t, 0.7*255, float64(bar.FillColor().A), 1)
}

func TestRingScene(t *testing.T) {
	assert.Len(t, Ring(0, 80, 8, theme.Steps, theme.Light).Shapes, 1, "no progress arc at zero")
	assert.Len(t, Ring(60, 80, 8, theme.Steps, theme.Light).Shapes, 2)
}

func TestWriteSVG(t *testing.T) {
	s := Trend(week(metric.Steps, 1000, 2000), chart.Box{Width: 200, Height: 100, Padding: 20}, theme.Steps, theme.Light)
	s.Background = theme.Light.Background
	s.Add(Text{Label: chart.Label{Text: "a<b", Pos: chart.Pt(1, 1)}, Size: 10, Color: color.NRGBA{A: 0x80}})
	var buf bytes.Buffer
	require.NoError(t, s.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">`), out)
	assert.Contains(t, out, `stroke-dasharray="4,4"`)
	assert.Contains(t, out, `stroke="#22c55e"`)
	assert.Contains(t, out, "a&lt;b")
	assert.Contains(t, out, `fill-opacity="0.502"`)
	assert.Equal(t, 3, strings.Count(out, "<text"))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error(), "invalid xml")
			break
		}
	}
}

func TestWritePNG(t *testing.T) {
	s := Gauge(110, 100, 40, theme.Light)
	s.Background = theme.Light.Card
	var buf bytes.Buffer
	require.NoError(t, s.WritePNG(&buf, 2))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	_, err = s.Raster(0)
	assert.Error(t, err)
	_, err = Scene{}.Raster(1)
	assert.Error(t, err)
}

func TestStyleOpacity(t *testing.T) {
	s := Style{Stroke: color.NRGBA{R: 1, A: 200}, StrokeWidth: 1, Opacity: 0.5}
	assert.Equal(t, uint8(100), s.StrokeColor().A)
	assert.True(t, s.Stroked())
	assert.False(t, s.Filled())
	s.Opacity = 0
	assert.Equal(t, uint8(200), s.StrokeColor().A)
}
