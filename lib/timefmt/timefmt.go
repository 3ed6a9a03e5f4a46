// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package timefmt renders durations the way a clock face does:
// MM:SS, rolling to HH:MM:SS at the hour, with an optional number of
// fractional second digits.
package timefmt

import (
	"fmt"
	"time"
)

// Format renders d as MM:SS with the seconds field carrying the given
// number of fractional digits, rounding half-up at that precision
// before the minute split. 59.99s therefore displays as "01:00" at
// zero decimals and "00:59.99" at two. Once the rounded total reaches
// an hour the format rolls to HH:MM:SS. Negative durations render as
// zero. Decimals outside [0, 9] are clamped.
func Format(d time.Duration, decimals int) string {
	if d < 0 {
		d = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 9 {
		decimals = 9
	}

	// Count in ticks of 10^-decimals seconds, rounding the remainder
	// half-up. Keeping the arithmetic integral avoids the float drift
	// that would misrender exact boundaries like 60s.
	perTick := time.Second
	for i := 0; i < decimals; i++ {
		perTick /= 10
	}
	ticks := int64(d / perTick)
	if rem := d % perTick; rem*2 >= perTick {
		ticks++
	}

	perSecond := int64(time.Second / perTick)
	seconds := ticks / perSecond
	frac := ticks % perSecond

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds %= 60

	field := fmt.Sprintf("%02d", seconds)
	if decimals > 0 {
		field = fmt.Sprintf("%02d.%0*d", seconds, decimals, frac)
	}
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%s", hours, minutes, field)
	}
	return fmt.Sprintf("%02d:%s", minutes, field)
}

// Clock renders d in the standard whole-second display.
func Clock(d time.Duration) string {
	return Format(d, 0)
}

// Precise renders d with hundredths of a second.
func Precise(d time.Duration) string {
	return Format(d, 2)
}
