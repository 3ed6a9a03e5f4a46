// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chessclock

import (
	"time"

	"github.com/bureau-foundation/chessclock/lib/timer"
	"github.com/bureau-foundation/chessclock/lib/wallclock"
)

// Status is the match-level condition, derived from the two timers on
// demand and never stored.
type Status int

const (
	// StatusStopped means the match is paused or has not begun.
	StatusStopped Status = iota
	// StatusRunning means one player's time is counting down.
	StatusRunning
	// StatusFinished means a flag has fallen or the match was ended.
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Clock is a two-player chess clock: a countdown timer per player, a
// record of whose turn it is, and the rules the match was configured
// with.
type Clock struct {
	timers [2]*timer.Timer
	active Player
	rules  Rules
}

// New builds a clock from the given rules. Both timers are seeded
// with their allotments and stopped; nothing runs until Start or
// SwitchPlayer. A nil wall clock means real time.
func New(rules Rules, wall wallclock.Clock) *Clock {
	if wall == nil {
		wall = wallclock.Real()
	}
	return &Clock{
		timers: [2]*timer.Timer{
			timer.New(timer.CountDown, rules.Player1Time, wall),
			timer.New(timer.CountDown, rules.Player2Time, wall),
		},
		active: rules.Starter,
		rules:  rules,
	}
}

// Rules returns the match configuration the clock was built with.
func (c *Clock) Rules() Rules {
	return c.rules
}

// ActivePlayer returns whose turn it is, whether or not time is
// running.
func (c *Clock) ActivePlayer() Player {
	return c.active
}

// Read returns both players' remaining time without touching state.
func (c *Clock) Read() (player1, player2 time.Duration) {
	return c.timers[Player1.Index()].Read(), c.timers[Player2.Index()].Read()
}

// Update reconciles both timers against the wall clock, letting a
// countdown that crossed zero stop itself. Drivers call this once per
// tick, before trusting Read or Status.
func (c *Clock) Update() {
	for _, t := range c.timers {
		t.Update()
	}
}

// Status derives the match condition. A flag fall, either remaining
// time at exactly zero, finishes the match immediately, even if the
// flagged timer has not yet reconciled its own state. Otherwise the
// match is finished only when both timers are, stopped when both are
// idle, and running when one side's time is counting.
func (c *Clock) Status() Status {
	player1, player2 := c.Read()
	state1 := c.timers[Player1.Index()].State()
	state2 := c.timers[Player2.Index()].State()
	switch {
	case player1 == 0 || player2 == 0:
		return StatusFinished
	case state1 == timer.Finished && state2 == timer.Finished:
		return StatusFinished
	case state1 == timer.Stopped && state2 == timer.Stopped:
		return StatusStopped
	default:
		return StatusRunning
	}
}

// Start sets the active player's time running. The inactive timer
// stays stopped, and a finished match stays finished.
func (c *Clock) Start() {
	c.timers[c.active.Index()].Start()
}

// Stop pauses the active player's timer.
func (c *Clock) Stop() {
	c.timers[c.active.Index()].Stop()
}

// Handoff describes what one SwitchPlayer call did.
type Handoff struct {
	// Switched is true when the active side flipped.
	Switched bool

	// From and To are the outgoing and incoming players. Meaningful
	// only when Switched.
	From, To Player

	// Elapsed is how long the outgoing player's turn ran. Zero when
	// the match was paused at the hand-off.
	Elapsed time.Duration

	// Credit is the increment banked to the outgoing player.
	Credit time.Duration
}

// SwitchPlayer hands the move to the other player. With the match
// running, the outgoing player's timer stops and is credited per the
// timing method, the incoming player's timer starts, and the active
// side flips. With the match merely paused, the active side flips
// with no credit and nothing starts. After a flag fall or Finish,
// switching is inert. The returned Handoff reports which of these
// happened.
func (c *Clock) SwitchPlayer() Handoff {
	c.Update()
	outgoing := c.timers[c.active.Index()]
	switch outgoing.State() {
	case timer.Running:
		running := outgoing.ReadRunning()
		credit := c.increment(running)
		outgoing.Stop()
		outgoing.Add(credit)
		c.timers[c.active.Other().Index()].Start()
		handoff := Handoff{
			Switched: true,
			From:     c.active,
			To:       c.active.Other(),
			Elapsed:  running,
			Credit:   credit,
		}
		c.active = c.active.Other()
		return handoff
	case timer.Finished:
		// The match is over; the hand-off means nothing.
		return Handoff{}
	default:
		handoff := Handoff{Switched: true, From: c.active, To: c.active.Other()}
		c.active = c.active.Other()
		return handoff
	}
}

// increment computes the hand-off credit for a turn that ran for the
// given time.
func (c *Clock) increment(running time.Duration) time.Duration {
	if c.rules.Method == Bronstein {
		return min(running, c.rules.Increment)
	}
	return c.rules.Increment
}

// Finish ends the match, freezing both timers at their current
// readings.
func (c *Clock) Finish() {
	for _, t := range c.timers {
		t.Finish()
	}
}
