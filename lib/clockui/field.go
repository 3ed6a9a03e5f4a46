// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clockui

import (
	"strconv"
	"strings"
)

// Field is a single-line numeric entry on the settings form: runes
// append, backspace deletes. The text is interpreted only when the
// match starts; anything that does not parse as a whole number counts
// as zero.
type Field struct {
	// Label is the prompt shown before the input.
	Label string

	// Unit is the suffix shown after the input ("min", "sec").
	Unit string

	// Input is the current text.
	Input string
}

// HandleRune appends a typed character to the input.
func (field *Field) HandleRune(character rune) {
	field.Input += string(character)
}

// HandleBackspace removes the last character from the input. Returns
// true if the input changed.
func (field *Field) HandleBackspace() bool {
	if len(field.Input) == 0 {
		return false
	}
	runes := []rune(field.Input)
	field.Input = string(runes[:len(runes)-1])
	return true
}

// Value interprets the input as a non-negative whole number. Garbage,
// negative, and empty input all count as zero.
func (field *Field) Value() int {
	n, err := strconv.Atoi(strings.TrimSpace(field.Input))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Selector is a two-value picker on the settings form.
type Selector struct {
	// Label is the prompt shown before the options.
	Label string

	// Options are the two values.
	Options [2]string

	// Index is the selected option, 0 or 1.
	Index int
}

// Cycle flips to the other option.
func (selector *Selector) Cycle() {
	selector.Index = 1 - selector.Index
}

// Value returns the selected option text.
func (selector *Selector) Value() string {
	return selector.Options[selector.Index]
}
