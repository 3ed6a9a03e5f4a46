// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package timer

import (
	"testing"
	"time"

	"github.com/bureau-foundation/chessclock/lib/wallclock"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewStartsStopped(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Minute, wall)

	if got := countdown.State(); got != Stopped {
		t.Fatalf("State() = %v, want %v", got, Stopped)
	}
	if got := countdown.Read(); got != 10*time.Minute {
		t.Fatalf("Read() = %v, want %v", got, 10*time.Minute)
	}
	if got := countdown.Mode(); got != CountDown {
		t.Fatalf("Mode() = %v, want %v", got, CountDown)
	}
}

func TestNewClampsNegativeSeed(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, -5*time.Second, wall)
	if got := up.Read(); got != 0 {
		t.Fatalf("Read() = %v, want 0", got)
	}
}

func TestCountUpAccumulatesAcrossSegments(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 0, wall)

	up.Start()
	wall.Advance(time.Second)
	if got := up.Read(); got != time.Second {
		t.Fatalf("Read() after 1s = %v, want 1s", got)
	}

	up.Stop()
	wall.Advance(time.Second)
	if got := up.Read(); got != time.Second {
		t.Fatalf("Read() while stopped = %v, want 1s", got)
	}

	up.Start()
	wall.Advance(time.Second)
	if got := up.Read(); got != 2*time.Second {
		t.Fatalf("Read() after second segment = %v, want 2s", got)
	}

	up.Reset(5 * time.Second)
	if got := up.Read(); got != 5*time.Second {
		t.Fatalf("Read() after Reset(5s) = %v, want 5s", got)
	}
	if got := up.State(); got != Stopped {
		t.Fatalf("State() after Reset = %v, want %v", got, Stopped)
	}

	up.Zero()
	if got := up.Read(); got != 0 {
		t.Fatalf("Read() after Zero = %v, want 0", got)
	}
}

func TestCountDownMonotonic(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Start()

	for _, step := range []struct {
		advance time.Duration
		want    time.Duration
	}{
		{3 * time.Second, 7 * time.Second},
		{6 * time.Second, 1 * time.Second},
		{500 * time.Millisecond, 500 * time.Millisecond},
		{500 * time.Millisecond, 0},
		{time.Hour, 0}, // clamped, never negative
	} {
		wall.Advance(step.advance)
		if got := countdown.Read(); got != step.want {
			t.Fatalf("Read() after +%v = %v, want %v", step.advance, got, step.want)
		}
	}
}

func TestCountDownPureReadKeepsRunning(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, time.Second, wall)
	countdown.Start()
	wall.Advance(2 * time.Second)

	// Read clamps but does not transition.
	if got := countdown.Read(); got != 0 {
		t.Fatalf("Read() = %v, want 0", got)
	}
	if got := countdown.State(); got != Running {
		t.Fatalf("State() after pure Read = %v, want %v (stale by design)", got, Running)
	}
}

func TestCountDownAutoStopsOnUpdate(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, time.Second, wall)
	countdown.Start()
	wall.Advance(2 * time.Second)

	if got := countdown.Update(); got != 0 {
		t.Fatalf("Update() = %v, want 0", got)
	}
	if got := countdown.State(); got != Stopped {
		t.Fatalf("State() after Update = %v, want %v", got, Stopped)
	}
	if got := countdown.Read(); got != 0 {
		t.Fatalf("Read() after auto-stop = %v, want 0", got)
	}

	// The exhausted timer can be restarted but has nothing left.
	countdown.Start()
	wall.Advance(time.Second)
	if got := countdown.Update(); got != 0 {
		t.Fatalf("Update() after restart on empty = %v, want 0", got)
	}
}

func TestCountDownStopsExactlyAtZero(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, time.Second, wall)
	countdown.Start()
	wall.Advance(time.Second)

	if got := countdown.Update(); got != 0 {
		t.Fatalf("Update() at the exact boundary = %v, want 0", got)
	}
	if got := countdown.State(); got != Stopped {
		t.Fatalf("State() at the exact boundary = %v, want %v", got, Stopped)
	}
}

func TestCountUpUpdateNeverStops(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 0, wall)
	up.Start()
	wall.Advance(time.Hour)

	if got := up.Update(); got != time.Hour {
		t.Fatalf("Update() = %v, want 1h", got)
	}
	if got := up.State(); got != Running {
		t.Fatalf("State() = %v, want %v", got, Running)
	}
}

func TestStartIdempotentWhileRunning(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Start()
	wall.Advance(3 * time.Second)

	// A second Start must not re-base the open segment.
	countdown.Start()
	wall.Advance(1 * time.Second)
	if got := countdown.Read(); got != 6*time.Second {
		t.Fatalf("Read() = %v, want 6s (segment start preserved)", got)
	}
}

func TestStopIdempotentWhileStopped(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Start()
	wall.Advance(2 * time.Second)
	countdown.Stop()

	countdown.Stop()
	if got := countdown.Read(); got != 8*time.Second {
		t.Fatalf("Read() = %v, want 8s", got)
	}
	if got := countdown.State(); got != Stopped {
		t.Fatalf("State() = %v, want %v", got, Stopped)
	}
}

func TestStopBanksRemaining(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Start()
	wall.Advance(4 * time.Second)
	countdown.Stop()

	wall.Advance(time.Hour)
	if got := countdown.Read(); got != 6*time.Second {
		t.Fatalf("Read() long after Stop = %v, want 6s", got)
	}
}

func TestReadRunning(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)

	if got := countdown.ReadRunning(); got != 0 {
		t.Fatalf("ReadRunning() while stopped = %v, want 0", got)
	}

	countdown.Start()
	wall.Advance(3 * time.Second)
	if got := countdown.ReadRunning(); got != 3*time.Second {
		t.Fatalf("ReadRunning() = %v, want 3s", got)
	}

	countdown.Stop()
	if got := countdown.ReadRunning(); got != 0 {
		t.Fatalf("ReadRunning() after Stop = %v, want 0", got)
	}

	// A new segment counts from its own start.
	countdown.Start()
	wall.Advance(time.Second)
	if got := countdown.ReadRunning(); got != time.Second {
		t.Fatalf("ReadRunning() in second segment = %v, want 1s", got)
	}
}

func TestAddWhileStoppedAndRunning(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 0, wall)

	up.Add(5 * time.Second)
	if got := up.Read(); got != 5*time.Second {
		t.Fatalf("Read() after Add while stopped = %v, want 5s", got)
	}

	up.Start()
	wall.Advance(2 * time.Second)
	up.Add(3 * time.Second)
	if got := up.Read(); got != 10*time.Second {
		t.Fatalf("Read() after Add while running = %v, want 10s", got)
	}
	if got := up.State(); got != Running {
		t.Fatalf("State() after Add while running = %v, want %v", got, Running)
	}
}

func TestAddIgnoresNonPositive(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 5*time.Second, wall)
	up.Add(0)
	up.Add(-time.Second)
	if got := up.Read(); got != 5*time.Second {
		t.Fatalf("Read() = %v, want 5s", got)
	}
}

func TestSubtractWhileStoppedFloorsAtZero(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 3*time.Second, wall)

	up.Subtract(2 * time.Second)
	if got := up.Read(); got != time.Second {
		t.Fatalf("Read() = %v, want 1s", got)
	}

	up.Subtract(5 * time.Second)
	if got := up.Read(); got != 0 {
		t.Fatalf("Read() after oversubtract = %v, want 0", got)
	}
}

func TestSubtractWhileRunningRebases(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 0, wall)
	up.Start()
	wall.Advance(5 * time.Second)

	up.Subtract(2 * time.Second)
	if got := up.Read(); got != 3*time.Second {
		t.Fatalf("Read() after Subtract = %v, want 3s", got)
	}
	if got := up.State(); got != Running {
		t.Fatalf("State() after Subtract = %v, want %v", got, Running)
	}

	wall.Advance(2 * time.Second)
	if got := up.Read(); got != 5*time.Second {
		t.Fatalf("Read() after re-based segment = %v, want 5s", got)
	}
}

func TestSubtractRunningToZeroStops(t *testing.T) {
	wall := wallclock.Fake(epoch)
	up := New(CountUp, 0, wall)
	up.Start()
	wall.Advance(8 * time.Second)

	up.Subtract(10 * time.Second)
	if got := up.Read(); got != 0 {
		t.Fatalf("Read() = %v, want 0", got)
	}
	if got := up.State(); got != Stopped {
		t.Fatalf("State() = %v, want %v (subtracted to zero)", got, Stopped)
	}
}

func TestFinishBanksAndIsTerminal(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Start()
	wall.Advance(4 * time.Second)

	countdown.Finish()
	if got := countdown.State(); got != Finished {
		t.Fatalf("State() = %v, want %v", got, Finished)
	}
	if got := countdown.Read(); got != 6*time.Second {
		t.Fatalf("Read() after Finish = %v, want 6s", got)
	}

	// None of these may reactivate the timer.
	countdown.Start()
	countdown.Stop()
	countdown.Update()
	if got := countdown.State(); got != Finished {
		t.Fatalf("State() after Start/Stop/Update = %v, want %v", got, Finished)
	}

	wall.Advance(time.Hour)
	if got := countdown.Read(); got != 6*time.Second {
		t.Fatalf("Read() long after Finish = %v, want 6s (frozen)", got)
	}
}

func TestAdjustmentsOnFinishedKeepState(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Finish()

	countdown.Add(5 * time.Second)
	if got := countdown.State(); got != Finished {
		t.Fatalf("State() after Add = %v, want %v", got, Finished)
	}
	if got := countdown.Read(); got != 15*time.Second {
		t.Fatalf("Read() after Add = %v, want 15s", got)
	}

	countdown.Subtract(20 * time.Second)
	if got := countdown.State(); got != Finished {
		t.Fatalf("State() after Subtract = %v, want %v", got, Finished)
	}
	if got := countdown.Read(); got != 0 {
		t.Fatalf("Read() after Subtract = %v, want 0", got)
	}
}

func TestResetLeavesFinished(t *testing.T) {
	wall := wallclock.Fake(epoch)
	countdown := New(CountDown, 10*time.Second, wall)
	countdown.Finish()

	countdown.Reset(3 * time.Second)
	if got := countdown.State(); got != Stopped {
		t.Fatalf("State() after Reset = %v, want %v", got, Stopped)
	}

	countdown.Start()
	if got := countdown.State(); got != Running {
		t.Fatalf("State() after Reset+Start = %v, want %v", got, Running)
	}
}

func TestModeAndStateStrings(t *testing.T) {
	for _, test := range []struct {
		value interface{ String() string }
		want  string
	}{
		{CountUp, "count-up"},
		{CountDown, "count-down"},
		{Stopped, "stopped"},
		{Running, "running"},
		{Finished, "finished"},
		{Mode(99), "unknown"},
		{State(99), "unknown"},
	} {
		if got := test.value.String(); got != test.want {
			t.Fatalf("String() = %q, want %q", got, test.want)
		}
	}
}
