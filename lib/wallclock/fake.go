// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wallclock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called. Tickers created on a FakeClock fire
// during Advance, once per elapsed interval.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Now returns the same
// instant until Advance moves it forward.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	tickers []*fakeTicker
}

// fakeTicker is a pending periodic waiter. After firing, its deadline
// is rescheduled by interval.
type fakeTicker struct {
	deadline time.Time
	interval time.Duration
	channel  chan time.Time
	stopped  bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// NewTicker returns a Ticker that fires during Advance calls. Panics
// if d <= 0, matching time.NewTicker.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("wallclock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	channel := make(chan time.Time, 1)
	waiter := &fakeTicker{
		deadline: c.current.Add(d),
		interval: d,
		channel:  channel,
	}
	c.tickers = append(c.tickers, waiter)

	return &Ticker{
		C: channel,
		stopFunc: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			waiter.stopped = true
		},
	}
}

// Advance moves the clock forward by d and fires every ticker whose
// deadline falls within the new time, once per elapsed interval, in
// deadline order. Channel sends are non-blocking (ticks that overflow
// the one-slot buffer are dropped, matching time.Ticker).
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	for {
		fired := c.fireDue(target)
		if !fired {
			return
		}
	}
}

// fireDue fires every due ticker in deadline order, reschedules them,
// and reports whether anything fired. Called in a loop so that a
// single Advance spanning several intervals delivers several ticks.
func (c *FakeClock) fireDue(target time.Time) bool {
	c.mu.Lock()

	var due []*fakeTicker
	for _, waiter := range c.tickers {
		if !waiter.stopped && !waiter.deadline.After(target) {
			due = append(due, waiter)
		}
	}
	if len(due) == 0 {
		c.mu.Unlock()
		return false
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, waiter := range due {
		waiter.deadline = waiter.deadline.Add(waiter.interval)
	}
	c.mu.Unlock()

	for _, waiter := range due {
		select {
		case waiter.channel <- target:
		default:
		}
	}
	return true
}
