// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command chessclock is a two-player chess clock for the terminal.
//
// It opens on a settings form for the time budgets, the increment
// rule, and the first mover, then shows the two clock faces. Saved
// defaults come from a YAML settings file; flags override them for a
// single run.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/chessclock/cmd/chessclock/cli"
	"github.com/bureau-foundation/chessclock/lib/clockui"
	"github.com/bureau-foundation/chessclock/lib/settings"
	"github.com/bureau-foundation/chessclock/lib/timefmt"
	"github.com/bureau-foundation/chessclock/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var timeFlag string
	var time2Flag string
	var incrementFlag string
	var methodFlag string
	var starterFlag string
	var precise bool
	var skipSettings bool
	var checkConfig bool
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("chessclock", pflag.ContinueOnError)
	flagSet.StringVar(&timeFlag, "time", "", "starting allotment for both players (Go duration, e.g. 10m)")
	flagSet.StringVar(&time2Flag, "time2", "", "starting allotment for player 2 when it differs from --time")
	flagSet.StringVar(&incrementFlag, "increment", "", "per-move credit (e.g. 5s)")
	flagSet.StringVar(&methodFlag, "method", "", "increment rule: fischer or bronstein")
	flagSet.StringVar(&starterFlag, "starter", "", "who moves first: player1 or player2")
	flagSet.BoolVar(&precise, "precise", false, "show hundredths of a second on the clock faces")
	flagSet.BoolVar(&skipSettings, "skip-settings", false, "skip the settings form and go straight to the clock")
	flagSet.StringVar(&configPath, "config", "", "settings file (default: chessclock/config.yaml under the user config directory)")
	flagSet.BoolVar(&checkConfig, "check-config", false, "validate the settings file, print the result, and exit")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON match event records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the timer binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("chessclock")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	path := configPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return cli.Internal("cannot resolve the settings location: %w", err)
		}
	}

	if checkConfig {
		return checkSettings(path, configPath != "")
	}

	saved, err := settings.LoadFile(path)
	if err != nil {
		return cli.Validation("cannot load settings from %s: %w", path, err).
			WithHint("Fix or delete the file, or run with --check-config for details.")
	}

	if flagSet.Changed("time") {
		saved.Player1Time = timeFlag
		if !flagSet.Changed("time2") {
			saved.Player2Time = timeFlag
		}
	}
	if flagSet.Changed("time2") {
		saved.Player2Time = time2Flag
	}
	if flagSet.Changed("increment") {
		saved.Increment = incrementFlag
	}
	if flagSet.Changed("method") {
		saved.Method = methodFlag
	}
	if flagSet.Changed("starter") {
		saved.Starter = starterFlag
	}
	if flagSet.Changed("precise") {
		saved.Precise = precise
	}

	if err := saved.Validate(); err != nil {
		return cli.Validation("invalid match configuration: %w", err).
			WithHint("Durations use Go syntax such as 10m, 90s, or 1h30m. " +
				"The method is fischer or bronstein; the starter is player1 or player2.")
	}

	// Match events go to a file, never the terminal: stderr would
	// corrupt the alt-screen display.
	logger := slog.New(slog.DiscardHandler)
	if logOutput != "" {
		handler, closeLog, err := openFileLogHandler(logOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", logOutput, err)
		}
		defer closeLog()
		logger = slog.New(handler)
	}

	model := clockui.NewModel(clockui.Options{
		Settings:     saved,
		SettingsPath: path,
		SkipSettings: skipSettings,
		Logger:       logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running the clock UI: %w", err)
	}
	return nil
}

// checkSettings validates the settings file at path and reports the
// result on stdout. A missing file at the default location is fine
// (the defaults apply); a missing file named with --config is an
// error. Validation findings exit 1 after being printed.
func checkSettings(path string, explicit bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return cli.NotFound("settings file %s does not exist", path)
		}
		fmt.Printf("no settings file at %s; the built-in defaults apply\n", path)
		return nil
	}

	loaded, err := settings.LoadFile(path)
	if err != nil {
		fmt.Printf("%v\n", err)
		return &cli.ExitError{Code: 1}
	}
	if err := loaded.Validate(); err != nil {
		fmt.Printf("%s is invalid:\n%v\n", path, err)
		return &cli.ExitError{Code: 1}
	}

	rules, err := loaded.Rules()
	if err != nil {
		return cli.Internal("converting validated settings: %w", err)
	}
	fmt.Printf("%s is valid: %s vs %s, %s increment %s, %s to move\n",
		path,
		timefmt.Clock(rules.Player1Time),
		timefmt.Clock(rules.Player2Time),
		rules.Method,
		timefmt.Clock(rules.Increment),
		rules.Starter,
	)
	return nil
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Chess clock — a two-player match clock for the terminal.

Opens on a settings form for the time budgets, the increment rule,
and the first mover; Enter on "[ Start match ]" brings up the two
clock faces. On the clock screen, Enter starts and pauses the match,
Space hands the move to the other player, and Backspace ends it.

Settings persist as YAML under the user configuration directory
(ctrl+s on the form saves the current values as the defaults). Flags
override the saved values for a single run.

Usage:
  chessclock [flags]

Examples:
  # Ten-minute defaults, starting on the settings form
  chessclock

  # A 5+3 blitz match, straight to the clock
  chessclock --time 5m --increment 3s --skip-settings

  # Bronstein delay with different budgets per player
  chessclock --time 30m --time2 25m --method bronstein

  # Validate a settings file and exit
  chessclock --config clock.yaml --check-config

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
