// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clockui is the interactive terminal UI for the chess clock.
//
// The UI is a bubbletea program with two screens. The settings screen
// is a small form: starting minutes per player, the increment in
// seconds, and two-value selectors for the timing method and the
// starting player. Confirming the form builds the match rules and
// flips to the clock screen: two side-by-side panels showing each
// player's remaining time, with the active player's panel tinted by
// the match condition (amber stopped, green running, red finished).
//
// The engine underneath never ticks on its own, so the model drives
// it: while the match is running a 100ms tea.Tick loop calls the
// engine's Update before every re-render, and the loop is rescheduled
// only while there is something to animate. When the match pauses or
// a flag falls the loop stops rescheduling itself and the UI goes
// idle until the next keypress.
//
// Rendering forces the ANSI 256-color profile, so output is identical
// whether the program runs in a real terminal, a pipe, or a test.
package clockui
