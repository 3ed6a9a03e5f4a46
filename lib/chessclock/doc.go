// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chessclock pairs two countdown timers into a chess clock:
// two players share a time budget, exactly one side's time runs at
// once, and handing the move over credits the outgoing player an
// increment according to the configured timing method (Fischer or
// Bronstein).
//
// The clock is passive. It never ticks on its own; every reading is
// derived from the injected wall clock at call time, and a flag fall
// (a countdown reaching zero) is detected lazily, on the next Update.
// A driver therefore polls: call Update once per tick, then Read and
// Status for display. Like the underlying timers, a Clock is owned by
// a single goroutine and is not safe for concurrent use.
//
// A match walks through three derived conditions: StatusStopped while
// paused or before the first Start, StatusRunning while one side's
// time counts down, and StatusFinished once a flag falls or Finish is
// called. Finished is terminal; a new match means a new Clock.
package chessclock
