// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"

	"github.com/kortschak/vitals/chart"
)

// Group is a set of named animations run in parallel, such as the
// scale and opacity tracks of an icon.
type Group struct {
	names  []string
	tracks []*Animation
}

// Add adds a named track to the group.
func (g *Group) Add(name string, a *Animation) *Group {
	g.names = append(g.names, name)
	g.tracks = append(g.tracks, a)
	return g
}

// Start starts all tracks at now.
func (g *Group) Start(now time.Time) {
	for _, a := range g.tracks {
		a.Start(now)
	}
}

// Stop cancels all tracks. It should be called when the owning
// view is torn down.
func (g *Group) Stop() {
	for _, a := range g.tracks {
		a.Stop()
	}
}

// Running reports whether any track is running.
func (g *Group) Running() bool {
	for _, a := range g.tracks {
		if a.State() == Running {
			return true
		}
	}
	return false
}

// Value returns the value of the named track at now and whether the
// track exists.
func (g *Group) Value(name string, now time.Time) (float64, bool) {
	for i, n := range g.names {
		if n == name {
			return g.tracks[i].Value(now), true
		}
	}
	return 0, false
}

// Track returns the named animation or nil.
func (g *Group) Track(name string) *Animation {
	for i, n := range g.names {
		if n == name {
			return g.tracks[i]
		}
	}
	return nil
}

// Track names used by the presets.
const (
	Scale      = "scale"
	Opacity    = "opacity"
	TranslateY = "translateY"
	Rotate     = "rotate" // degrees
	Reveal     = "reveal"
)

// Flame returns the flickering calories icon animation.
func Flame() *Group {
	const step = 400 * time.Millisecond
	return new(Group).
		Add(Scale, New(1, true,
			Tween{To: 1.2, Duration: step},
			Tween{To: 0.9, Duration: step},
			Tween{To: 1, Duration: step},
		)).
		Add(Opacity, New(1, true,
			Tween{To: 0.7, Duration: step},
			Tween{To: 1, Duration: step},
			Tween{To: 0.8, Duration: step},
		))
}

// Steps returns the bobbing steps icon animation.
func Steps() *Group {
	const step = 500 * time.Millisecond
	return new(Group).
		Add(TranslateY, New(0, true,
			Tween{To: -5, Duration: step},
			Tween{To: 0, Duration: step},
		)).
		Add(Rotate, New(0, true,
			Tween{To: 15, Duration: step},
			Tween{To: 0, Duration: step},
		))
}

// Pulse returns the heartbeat reveal animation, sweeping from 0 to 1
// once per beat at bpm. A non-positive rate gives an animation that
// never runs.
func Pulse(bpm float64) *Group {
	return new(Group).Add(Reveal, New(0, true, Tween{To: 1, Duration: chart.BeatPeriod(bpm)}))
}

// Flow returns the oxygen wave animation, sweeping from 0 to 1 every
// two seconds.
func Flow() *Group {
	return new(Group).Add(Reveal, New(0, true, Tween{To: 1, Duration: 2 * time.Second}))
}
