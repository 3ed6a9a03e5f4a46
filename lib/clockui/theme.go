// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clockui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/chessclock/lib/chessclock"
)

// renderer draws with a forced ANSI 256-color profile. lipgloss would
// otherwise re-detect the terminal's capabilities from the output
// stream, which strips all color under tests and pipes.
var renderer = lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256))

// Theme defines the color palette for the clock UI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Match condition colors, applied to the active player's panel
	// and the condition indicator.
	StatusStopped  lipgloss.Color
	StatusRunning  lipgloss.Color
	StatusFinished lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Settings form focus.
	FocusedForeground lipgloss.Color
}

// StatusColor returns the color for a match condition: amber while
// stopped, green while running, red once finished.
func (theme Theme) StatusColor(status chessclock.Status) lipgloss.Color {
	switch status {
	case chessclock.StatusRunning:
		return theme.StatusRunning
	case chessclock.StatusFinished:
		return theme.StatusFinished
	default:
		return theme.StatusStopped
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	StatusStopped:  lipgloss.Color("220"), // amber: paused, ready to run
	StatusRunning:  lipgloss.Color("114"), // green: time is counting
	StatusFinished: lipgloss.Color("196"), // red: flag fell or match ended

	HeaderForeground:  lipgloss.Color("255"),
	BorderColor:       lipgloss.Color("240"),
	HelpText:          lipgloss.Color("241"),
	FocusedForeground: lipgloss.Color("255"),
}
