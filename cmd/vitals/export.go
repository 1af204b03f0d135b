// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/metric"
	"github.com/kortschak/vitals/mock"
	"github.com/kortschak/vitals/scene"
	"github.com/kortschak/vitals/theme"
)

// Widget geometry in dp.
const (
	cardVisualWidth  = 140
	cardVisualHeight = 60
	ringSize         = 60
	ringStroke       = 6
	rasterScale      = 2
)

// detailBox is the trend chart box of the metric detail view.
var detailBox = chart.Box{Width: 300, Height: 150, Padding: 40}

type namedScene struct {
	name  string
	scene scene.Scene
}

// cardVisual returns the small visualisation shown on the home card
// for m.
func cardVisual(data *mock.Data, m metric.Metric, pal theme.Palette) (scene.Scene, error) {
	switch m {
	case metric.HeartRate:
		return scene.Heartbeat(cardVisualWidth, cardVisualHeight, m.Color()), nil
	case metric.BloodPressure:
		v, err := data.CurrentValue(m)
		if err != nil {
			return scene.Scene{}, err
		}
		return scene.Gauge(v, cardVisualWidth, cardVisualHeight, pal), nil
	case metric.BloodOxygen:
		return scene.Oxygen(cardVisualWidth, cardVisualHeight, m.Color()), nil
	case metric.Steps:
		p, err := data.StepProgress()
		if err != nil {
			return scene.Scene{}, err
		}
		return scene.Ring(chart.ClampPercent(p), ringSize, ringStroke, m.Color(), pal), nil
	case metric.Sleep:
		return scene.Sleep(data.Readings().Filter(m), cardVisualWidth, cardVisualHeight), nil
	default:
		return scene.Scene{}, nil
	}
}

// detailTrend returns the trend chart of the detail view for m.
func detailTrend(data *mock.Data, m metric.Metric, pal theme.Palette) scene.Scene {
	return scene.Trend(data.Readings().Filter(m), detailBox, m.Color(), pal)
}

// allScenes returns every card visual and detail trend.
func allScenes(data *mock.Data, pal theme.Palette) ([]namedScene, error) {
	var scenes []namedScene
	for _, m := range metric.All {
		name := slug(m.Label())
		s, err := cardVisual(data, m, pal)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s card: %w", m, err)
		}
		if len(s.Shapes) != 0 {
			scenes = append(scenes, namedScene{name: name + "-card", scene: s})
		}
		scenes = append(scenes, namedScene{name: name + "-trend", scene: detailTrend(data, m, pal)})
	}
	return scenes, nil
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// export writes every scene as SVG and PNG into dir.
func export(dir string, data *mock.Data, pal theme.Palette, log *zap.Logger) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	scenes, err := allScenes(data, pal)
	if err != nil {
		return err
	}
	for _, ns := range scenes {
		ns.scene.Background = pal.Card
		for _, out := range []struct {
			ext   string
			write func(io.Writer) error
		}{
			{ext: ".svg", write: ns.scene.WriteSVG},
			{ext: ".png", write: func(w io.Writer) error { return ns.scene.WritePNG(w, rasterScale) }},
		} {
			path := filepath.Join(dir, ns.name+out.ext)
			err = writeFile(path, out.write)
			if err != nil {
				return err
			}
			log.Debug("exported scene", zap.String("path", path))
		}
	}
	log.Info("export complete", zap.String("dir", dir), zap.Int("scenes", len(scenes)))
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	err = write(f)
	if err != nil {
		err = fmt.Errorf("failed to write %s: %w", path, err)
	}
	return errors.Join(err, f.Close())
}
