// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wallclock provides an injectable wall-time source.
//
// The timing engine never runs background timers: elapsed time is
// always derived by subtracting a recorded start instant from "now" at
// read time, and the only ticking in the system is the driver's poll
// loop. That leaves exactly two time operations to abstract, reading
// the current instant and creating a poll ticker, and this package
// covers both so that every timing computation is deterministic
// under test.
//
// Production code injects Real(). Tests inject Fake(initial) and call
// Advance to move time forward:
//
//	wall := wallclock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	t := timer.New(timer.CountDown, 10*time.Minute, wall)
//	t.Start()
//	wall.Advance(3 * time.Second)
//	// t.Read() == 9m57s, no sleeping involved
package wallclock
