// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package timer implements a single start/stop duration tracker that
// counts up (stopwatch) or down (countdown), the building block under
// the two-player chess clock.
//
// A Timer never runs anything in the background. It records the
// instant a run segment starts and derives the current reading from
// the wall clock on demand. Because there is no ticking goroutine, a
// countdown that reaches zero cannot stop itself at the moment of the
// crossing; instead the state is reconciled lazily by the next Update
// call. Read is the pure projection and Update is the reconciling
// read: pollers call Update on every tick and may use Read freely in
// between.
//
// A Timer is not goroutine-safe. It is owned by a single driver (a UI
// event loop or a poll loop) and mutated only through its methods, so
// no internal locking is warranted.
package timer

import (
	"math"
	"time"

	"github.com/bureau-foundation/chessclock/lib/wallclock"
)

// Mode selects the counting direction. Immutable for the lifetime of
// a Timer.
type Mode int

const (
	// CountUp starts at the seed duration and accumulates elapsed
	// time without bound.
	CountUp Mode = iota
	// CountDown starts at the seed duration and runs toward zero,
	// stopping there.
	CountDown
)

// String returns "count-up" or "count-down".
func (m Mode) String() string {
	switch m {
	case CountUp:
		return "count-up"
	case CountDown:
		return "count-down"
	default:
		return "unknown"
	}
}

// State is the timer's lifecycle phase.
type State int

const (
	// Stopped means the banked duration is authoritative and nothing
	// is accumulating.
	Stopped State = iota
	// Running means a run segment is open and readings are derived
	// from the wall clock.
	Running
	// Finished is terminal: entered only via Finish, left only via
	// Reset. Start, Stop, Add, and Subtract never reactivate a
	// finished timer.
	Finished
)

// String returns "stopped", "running", or "finished".
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Timer is a single countable clock face. The banked duration holds
// time carried over from previous run segments: total elapsed for
// count-up, time remaining for count-down. While running, readings
// combine the bank with the length of the open segment.
type Timer struct {
	mode      Mode
	wall      wallclock.Clock
	banked    time.Duration
	state     State
	startedAt time.Time // valid only while state == Running
}

// New returns a stopped timer seeded with the given duration: the
// starting count for count-up, the full allotment for count-down.
// Negative seeds are treated as zero. A nil wall clock means
// wallclock.Real().
func New(mode Mode, seed time.Duration, wall wallclock.Clock) *Timer {
	if seed < 0 {
		seed = 0
	}
	if wall == nil {
		wall = wallclock.Real()
	}
	return &Timer{
		mode:   mode,
		wall:   wall,
		banked: seed,
		state:  Stopped,
	}
}

// Mode returns the counting direction.
func (t *Timer) Mode() Mode { return t.mode }

// State returns the last-known state without consulting the wall
// clock. For a running countdown this may be stale (the timer may
// already have crossed zero), so callers that need the authoritative
// state call Update first.
func (t *Timer) State() State { return t.state }

// Read returns the current reading (elapsed time for count-up,
// remaining time for count-down) without mutating the timer. A
// running countdown past its allotment reads zero, never negative.
func (t *Timer) Read() time.Duration {
	return t.projected(t.wall.Now())
}

// Update returns the same reading as Read and reconciles state with
// it: a running countdown that has reached zero is stopped with an
// empty bank. This is the auto-stop-at-zero transition; it happens
// here, on the poll, because no background goroutine exists to do it
// at the crossing instant.
func (t *Timer) Update() time.Duration {
	value := t.projected(t.wall.Now())
	if t.state == Running && t.mode == CountDown && value == 0 {
		t.banked = 0
		t.state = Stopped
	}
	return value
}

// ReadRunning returns the length of the current run segment: how long
// the timer has been running since the last Start. Zero when not
// running. The Bronstein increment is computed from this value.
func (t *Timer) ReadRunning() time.Duration {
	if t.state != Running {
		return 0
	}
	return t.segmentElapsed(t.wall.Now())
}

// Start opens a run segment. No-op unless the timer is stopped:
// starting a running timer changes nothing, and a finished timer
// stays finished.
func (t *Timer) Start() {
	if t.state != Stopped {
		return
	}
	t.startedAt = t.wall.Now()
	t.state = Running
}

// Stop closes the run segment, banking the current reading. No-op
// unless the timer is running.
func (t *Timer) Stop() {
	if t.state != Running {
		return
	}
	t.banked = t.projected(t.wall.Now())
	t.state = Stopped
}

// Reset replaces the bank with seed and forces the timer to Stopped
// from any state. This is the one way out of Finished. Negative seeds
// are treated as zero.
func (t *Timer) Reset(seed time.Duration) {
	if seed < 0 {
		seed = 0
	}
	t.banked = seed
	t.state = Stopped
}

// Zero resets the timer to an empty bank. Equivalent to Reset(0).
func (t *Timer) Zero() {
	t.Reset(0)
}

// Add credits d to the bank. Legal in any state, effective
// immediately in readings, and never a state change: a running timer
// keeps its segment start, a finished timer stays finished.
// Non-positive d is ignored.
func (t *Timer) Add(d time.Duration) {
	if d <= 0 {
		return
	}
	t.banked = saturatingAdd(t.banked, d)
}

// Subtract debits d, flooring at zero. While running, the timer is
// re-based: the current reading minus d becomes the new bank, and the
// segment restarts only if that bank is still positive, so a running
// timer subtracted to zero stops there. In any other state the bank
// is reduced directly with no state change. Non-positive d is
// ignored.
func (t *Timer) Subtract(d time.Duration) {
	if d <= 0 {
		return
	}
	if t.state == Running {
		now := t.wall.Now()
		t.banked = saturatingSub(t.projected(now), d)
		t.state = Stopped
		if t.banked > 0 {
			t.startedAt = now
			t.state = Running
		}
		return
	}
	t.banked = saturatingSub(t.banked, d)
}

// Finish stops the timer if running, banking the current reading,
// then forces the terminal Finished state. Only Reset leaves it.
func (t *Timer) Finish() {
	if t.state == Running {
		t.banked = t.projected(t.wall.Now())
	}
	t.state = Finished
}

// projected computes the reading at the given instant without
// touching state.
func (t *Timer) projected(now time.Time) time.Duration {
	if t.state != Running {
		return t.banked
	}
	elapsed := t.segmentElapsed(now)
	if t.mode == CountUp {
		return saturatingAdd(t.banked, elapsed)
	}
	return saturatingSub(t.banked, elapsed)
}

// segmentElapsed returns how far the open run segment has progressed.
// Negative only if the wall clock moved backwards; treated as no
// progress.
func (t *Timer) segmentElapsed(now time.Time) time.Duration {
	elapsed := now.Sub(t.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func saturatingAdd(a, b time.Duration) time.Duration {
	sum := a + b
	if sum < a {
		return time.Duration(math.MaxInt64)
	}
	return sum
}

func saturatingSub(a, b time.Duration) time.Duration {
	if b >= a {
		return 0
	}
	return a - b
}
