// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chessclock

import (
	"fmt"
	"strings"
	"time"
)

// Player identifies one side of the clock.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Index maps the player to an array index, 0 or 1.
func (p Player) Index() int {
	return int(p)
}

// Other returns the opponent.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "unknown"
	}
}

// ParsePlayer converts a configuration or flag value ("player1",
// "player2", case-insensitive) to a Player.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player1", "1":
		return Player1, nil
	case "player2", "2":
		return Player2, nil
	default:
		return Player1, fmt.Errorf("unknown player %q (want player1 or player2)", s)
	}
}

// TimingMethod selects how the hand-off increment is credited.
type TimingMethod int

const (
	// Fischer credits the full increment on every hand-off.
	Fischer TimingMethod = iota
	// Bronstein credits at most the increment, and never more than
	// the time the turn actually took.
	Bronstein
)

func (m TimingMethod) String() string {
	switch m {
	case Fischer:
		return "Fischer"
	case Bronstein:
		return "Bronstein"
	default:
		return "unknown"
	}
}

// ParseTimingMethod converts a configuration or flag value
// ("fischer", "bronstein", case-insensitive) to a TimingMethod.
func ParseTimingMethod(s string) (TimingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fischer":
		return Fischer, nil
	case "bronstein":
		return Bronstein, nil
	default:
		return Fischer, fmt.Errorf("unknown timing method %q (want fischer or bronstein)", s)
	}
}

// Rules configures a match: each player's starting allotment, the
// hand-off increment, who moves first, and the timing method.
type Rules struct {
	Player1Time time.Duration
	Player2Time time.Duration
	Increment   time.Duration
	Starter     Player
	Method      TimingMethod
}

// DefaultRules returns a ten-minute game with a five-second Fischer
// increment, Player 1 to move.
func DefaultRules() Rules {
	return Rules{
		Player1Time: 10 * time.Minute,
		Player2Time: 10 * time.Minute,
		Increment:   5 * time.Second,
		Starter:     Player1,
		Method:      Fischer,
	}
}

// Time returns the starting allotment for the given player.
func (r Rules) Time(p Player) time.Duration {
	if p == Player1 {
		return r.Player1Time
	}
	return r.Player2Time
}

// SetTime replaces the starting allotment for the given player.
func (r *Rules) SetTime(p Player, d time.Duration) {
	if p == Player1 {
		r.Player1Time = d
		return
	}
	r.Player2Time = d
}
