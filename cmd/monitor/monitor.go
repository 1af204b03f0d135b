// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kortschak/vitals/anim"
	"github.com/kortschak/vitals/chart"
	"github.com/kortschak/vitals/cmd/internal/ring"
	"github.com/kortschak/vitals/metric"
)

// Card geometry.
const (
	cardWidth  = 296
	cardHeight = 128

	// sampleRate is the number of trace samples per second.
	sampleRate = 100
	// samplesPerFrame is the number of samples written between card
	// updates.
	samplesPerFrame = 4
)

type monitor struct {
	log    *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}

	mu   sync.Mutex
	card *image.Gray
}

// newMonitor renders the card for the given rate and series and
// starts the trace. Snapshots of the card are sent on update until
// the monitor is closed or ctx is cancelled.
func newMonitor(ctx context.Context, bpm float64, series metric.Series, clock anim.Clock, update chan<- image.Image, log *zap.Logger) (*monitor, error) {
	period := chart.BeatPeriod(bpm)
	if period == 0 {
		return nil, fmt.Errorf("invalid heart rate: %v", bpm)
	}

	card := image.NewGray(image.Rectangle{Max: image.Point{X: cardWidth, Y: cardHeight}})
	blank(card)

	hrStats := newHeartRate(subDrawImage(card, image.Rectangle{
		Min: image.Point{X: 0, Y: 0},
		Max: image.Point{X: 64, Y: 64},
	}))
	trace := newTracePlot(subDrawImage(card, image.Rectangle{
		Min: image.Point{X: 0, Y: 64},
		Max: image.Point{X: cardWidth, Y: cardHeight},
	}))
	history := newRateHistory(subDrawImage(card, image.Rectangle{
		Min: image.Point{X: 64, Y: 0},
		Max: image.Point{X: cardWidth, Y: 64},
	}))

	hrStats.show(bpm)
	history.plot(series)

	ctx, cancel := context.WithCancel(ctx)
	m := &monitor{
		log:    log,
		cancel: cancel,
		done:   make(chan struct{}),
		card:   card,
	}
	log.Info("starting trace", zap.Float64("bpm", bpm), zap.Duration("period", period), zap.Int("history", len(series)))

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(time.Second / sampleRate)
		defer ticker.Stop()

		traceRing := ring.NewBuffer[float64](trace.width())
		sample := make([]float64, 1)
		start := clock.Now()
		var n int
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sample[0] = heartbeatSample(clock.Now().Sub(start), period)
				traceRing.Write(sample)
				n++
				if n%samplesPerFrame != 0 {
					continue
				}
				m.mu.Lock()
				trace.add(traceRing)
				snap := m.snapshot()
				m.mu.Unlock()
				select {
				case update <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return m, nil
}

// heartbeatSample returns the vertical fraction of the cardiac cycle
// elapsed into a trace with the given beat period.
func heartbeatSample(elapsed, period time.Duration) float64 {
	return chart.HeartbeatAt(math.Mod(float64(elapsed), float64(period)) / float64(period))
}

// snapshot returns a copy of the card. It must be called with mu held.
func (m *monitor) snapshot() *image.Gray {
	dst := image.NewGray(m.card.Rect)
	draw.Draw(dst, dst.Rect, m.card, m.card.Rect.Min, draw.Src)
	return dst
}

// Snapshot returns a copy of the current card.
func (m *monitor) Snapshot() *image.Gray {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Close stops the trace and waits for it to finish.
func (m *monitor) Close() error {
	m.cancel()
	<-m.done
	m.log.Debug("trace stopped")
	return nil
}
