// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		d        time.Duration
		decimals int
		want     string
	}{
		{0, 0, "00:00"},
		{0, 2, "00:00.00"},
		{time.Second, 0, "00:01"},
		{65 * time.Second, 0, "01:05"},
		{60 * time.Second, 0, "01:00"},
		{600 * time.Second, 0, "10:00"},
		{750 * time.Millisecond, 0, "00:01"},
		{499 * time.Millisecond, 0, "00:00"},
		{500 * time.Millisecond, 0, "00:01"},

		// Rounding happens before the minute split.
		{59990 * time.Millisecond, 0, "01:00"},
		{59990 * time.Millisecond, 2, "00:59.99"},
		{59994 * time.Millisecond, 2, "00:59.99"},
		{59995 * time.Millisecond, 2, "01:00.00"},
		{600100 * time.Millisecond, 0, "10:00"},
		{600100 * time.Millisecond, 2, "10:00.10"},

		// An hour rolls the format.
		{3600 * time.Second, 0, "01:00:00"},
		{3600 * time.Second, 2, "01:00:00.00"},
		{3599 * time.Second, 0, "59:59"},
		{3599500 * time.Millisecond, 0, "01:00:00"},
		{5025 * time.Second, 0, "01:23:45"},
		{25 * time.Hour, 0, "25:00:00"},

		// Other precisions.
		{1500 * time.Millisecond, 1, "00:01.5"},
		{62*time.Second + 345*time.Millisecond, 3, "01:02.345"},

		// Out-of-range inputs clamp.
		{-time.Minute, 0, "00:00"},
		{time.Second, -3, "00:01"},
	} {
		if got := Format(test.d, test.decimals); got != test.want {
			t.Fatalf("Format(%v, %d) = %q, want %q", test.d, test.decimals, got, test.want)
		}
	}
}

func TestClockAndPrecise(t *testing.T) {
	d := 59990 * time.Millisecond
	if got := Clock(d); got != "01:00" {
		t.Fatalf("Clock(%v) = %q, want %q", d, got, "01:00")
	}
	if got := Precise(d); got != "00:59.99" {
		t.Fatalf("Precise(%v) = %q, want %q", d, got, "00:59.99")
	}
}
