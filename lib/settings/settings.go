// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings persists the chess clock's match configuration.
//
// Settings live in a single YAML file, by default
// $XDG_CONFIG_HOME/chessclock/config.yaml. Loading merges the file
// over built-in defaults, so a missing file or a file naming only
// some fields is fine. Durations are stored as Go duration strings
// ("10m", "5s") and parsed during validation; nothing is interpreted
// at load time.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/chessclock/lib/chessclock"
)

// Settings is the saved match configuration.
type Settings struct {
	// Player1Time is Player 1's starting allotment as a Go duration
	// string. Default: 10m.
	Player1Time string `yaml:"player1_time"`

	// Player2Time is Player 2's starting allotment.
	// Default: 10m.
	Player2Time string `yaml:"player2_time"`

	// Increment is the hand-off credit. Default: 5s.
	Increment string `yaml:"increment"`

	// Method selects the increment rule: fischer or bronstein.
	// Default: fischer.
	Method string `yaml:"method"`

	// Starter is who moves first: player1 or player2.
	// Default: player1.
	Starter string `yaml:"starter"`

	// Precise renders hundredths of a second on the clock faces.
	// Default: false.
	Precise bool `yaml:"precise"`
}

// Default returns the built-in configuration: a ten-minute game with
// a five-second Fischer increment, Player 1 to move.
func Default() *Settings {
	return &Settings{
		Player1Time: "10m",
		Player2Time: "10m",
		Increment:   "5s",
		Method:      "fischer",
		Starter:     "player1",
	}
}

// DefaultPath returns the standard settings location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(dir, "chessclock", "config.yaml"), nil
}

// LoadFile loads settings from path, merged over the defaults. A
// missing file is not an error: the defaults apply unchanged.
func LoadFile(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to path as YAML, creating the parent
// directory if needed.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	var errs []error

	for _, field := range []struct {
		name  string
		value string
	}{
		{"player1_time", s.Player1Time},
		{"player2_time", s.Player2Time},
	} {
		d, err := time.ParseDuration(field.value)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", field.name, field.value))
		}
	}

	if d, err := time.ParseDuration(s.Increment); err != nil {
		errs = append(errs, fmt.Errorf("increment: %w", err))
	} else if d < 0 {
		errs = append(errs, fmt.Errorf("increment must not be negative, got %s", s.Increment))
	}

	if _, err := chessclock.ParseTimingMethod(s.Method); err != nil {
		errs = append(errs, err)
	}
	if _, err := chessclock.ParsePlayer(s.Starter); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Rules converts the settings to match rules, validating first.
func (s *Settings) Rules() (chessclock.Rules, error) {
	if err := s.Validate(); err != nil {
		return chessclock.Rules{}, err
	}
	player1, _ := time.ParseDuration(s.Player1Time)
	player2, _ := time.ParseDuration(s.Player2Time)
	increment, _ := time.ParseDuration(s.Increment)
	method, _ := chessclock.ParseTimingMethod(s.Method)
	starter, _ := chessclock.ParsePlayer(s.Starter)
	return chessclock.Rules{
		Player1Time: player1,
		Player2Time: player2,
		Increment:   increment,
		Starter:     starter,
		Method:      method,
	}, nil
}

// FromRules captures match rules and the display mode as settings
// ready to save.
func FromRules(rules chessclock.Rules, precise bool) *Settings {
	return &Settings{
		Player1Time: rules.Player1Time.String(),
		Player2Time: rules.Player2Time.String(),
		Increment:   rules.Increment.String(),
		Method:      methodKey(rules.Method),
		Starter:     playerKey(rules.Starter),
		Precise:     precise,
	}
}

func methodKey(m chessclock.TimingMethod) string {
	if m == chessclock.Bronstein {
		return "bronstein"
	}
	return "fischer"
}

func playerKey(p chessclock.Player) string {
	if p == chessclock.Player2 {
		return "player2"
	}
	return "player1"
}
