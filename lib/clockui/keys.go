// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clockui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the chess clock TUI. The clock
// and settings screens route input separately, so Toggle and Accept
// may share a key.
type KeyMap struct {
	// Clock screen.
	Toggle   key.Binding // Start or stop the active player's time.
	Switch   key.Binding // Hand the move to the other player.
	Finish   key.Binding // End the match where it stands.
	Settings key.Binding // Abandon the match and reopen settings.

	// Settings screen.
	NextField    key.Binding
	PrevField    key.Binding
	CycleOption  key.Binding // Flip a two-value selector row.
	Accept       key.Binding // Next row; on the start row, begin the match.
	SaveDefaults key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. The clock screen
// keeps the traditional bindings: enter toggles the clock and space
// punches it over to the other player.
var DefaultKeyMap = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "start/stop"),
	),
	Switch: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "switch player"),
	),
	Finish: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "finish"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab/↓", "next"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-Tab/↑", "previous"),
	),
	CycleOption: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "change"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirm"),
	),
	SaveDefaults: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save defaults"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
