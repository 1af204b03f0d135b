// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim implements frame-clock driven property animations.
//
// An Animation moves a single value through a sequence of tweens. It is
// a small state machine: it starts Idle, becomes Running when started
// and Cancelled when stopped. Looping animations run until stopped;
// others return to Idle holding their final value. Animations are not
// safe for concurrent use; they are expected to be driven from a
// single UI goroutine.
package anim

import (
	"time"
)

// Clock is a source of frame times.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock.
var System Clock = ClockFunc(time.Now)

// State is the lifecycle state of an Animation.
type State uint8

//go:generate go tool golang.org/x/tools/cmd/stringer -type State
const (
	Idle State = iota
	Running
	Cancelled
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is a symmetric cubic easing.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Tween moves a value from wherever the previous tween left it to To
// over Duration. A nil Ease uses EaseInOut.
type Tween struct {
	To       float64
	Duration time.Duration
	Ease     Easing
}

// Animation is a sequence of tweens over a single value.
type Animation struct {
	from  float64
	steps []Tween
	total time.Duration
	loop  bool

	state State
	start time.Time
	last  float64
}

// New returns an Idle animation starting at from and moving through
// steps. If loop is true the sequence repeats until stopped.
func New(from float64, loop bool, steps ...Tween) *Animation {
	var total time.Duration
	for _, s := range steps {
		total += max(s.Duration, 0)
	}
	return &Animation{
		from:  from,
		steps: steps,
		total: total,
		loop:  loop,
		last:  from,
	}
}

// State returns the current lifecycle state of a.
func (a *Animation) State() State { return a.state }

// Duration returns the length of one pass through the sequence.
func (a *Animation) Duration() time.Duration { return a.total }

// Start runs the animation from the beginning at now. Starting a
// running animation restarts it. An animation with no duration
// cannot run and remains in its current state.
func (a *Animation) Start(now time.Time) {
	if a.total <= 0 {
		return
	}
	a.state = Running
	a.start = now
	a.last = a.from
}

// Stop cancels a running animation, freezing it at the last
// value it reported.
func (a *Animation) Stop() {
	if a.state == Running {
		a.state = Cancelled
	}
}

// Value returns the animated value at now. Idle and cancelled
// animations return the last value computed while running.
func (a *Animation) Value(now time.Time) float64 {
	if a.state != Running {
		return a.last
	}
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= a.total {
		if !a.loop {
			a.state = Idle
			a.last = a.final()
			return a.last
		}
		elapsed %= a.total
	}
	a.last = a.at(elapsed)
	return a.last
}

// Progress returns the fraction of the current pass completed at now,
// in [0, 1).
func (a *Animation) Progress(now time.Time) float64 {
	if a.state != Running || a.total <= 0 {
		return 0
	}
	elapsed := max(now.Sub(a.start), 0)
	if a.loop {
		elapsed %= a.total
	} else if elapsed >= a.total {
		return 1
	}
	return float64(elapsed) / float64(a.total)
}

func (a *Animation) at(elapsed time.Duration) float64 {
	v := a.from
	for _, s := range a.steps {
		d := max(s.Duration, 0)
		if elapsed >= d {
			elapsed -= d
			v = s.To
			continue
		}
		ease := s.Ease
		if ease == nil {
			ease = EaseInOut
		}
		t := ease(float64(elapsed) / float64(d))
		return v + (s.To-v)*t
	}
	return v
}

func (a *Animation) final() float64 {
	if len(a.steps) == 0 {
		return a.from
	}
	return a.steps[len(a.steps)-1].To
}
