// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command chessclock-timer is a single-timer stopwatch and countdown
// for the terminal: one status line, rewritten in place, no alternate
// screen. A countdown runs until it reaches zero; a stopwatch runs
// until q.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/chessclock/cmd/chessclock/cli"
	"github.com/bureau-foundation/chessclock/lib/timefmt"
	"github.com/bureau-foundation/chessclock/lib/timer"
	"github.com/bureau-foundation/chessclock/lib/version"
	"github.com/bureau-foundation/chessclock/lib/wallclock"
)

// pollInterval is the render cadence, inside the 10-100ms polling
// window the timer's lazy reconciliation expects.
const pollInterval = 50 * time.Millisecond

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
	var modeFlag string
	var startFlag string
	var precise bool

	flagSet := pflag.NewFlagSet("chessclock-timer", pflag.ContinueOnError)
	flagSet.StringVar(&modeFlag, "mode", "down", "timer direction: up or down")
	flagSet.StringVar(&startFlag, "start", "", "starting value (Go duration; default 0s for up, 10m for down)")
	flagSet.BoolVar(&precise, "precise", false, "show hundredths of a second")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the chessclock
	// binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("chessclock-timer")
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

	var mode timer.Mode
	switch strings.ToLower(modeFlag) {
	case "up":
		mode = timer.CountUp
	case "down":
		mode = timer.CountDown
	default:
		return cli.Validation("invalid --mode %q", modeFlag).
			WithHint("Pass up for a stopwatch or down for a countdown.")
	}

	start := time.Duration(0)
	if mode == timer.CountDown {
		start = 10 * time.Minute
	}
	if startFlag != "" {
		parsed, err := time.ParseDuration(startFlag)
		if err != nil {
			return cli.Validation("invalid --start %q: %w", startFlag, err).
				WithHint("Pass a Go duration such as 90s, 10m, or 1h30m.")
		}
		if parsed < 0 {
			return cli.Validation("--start must not be negative, got %s", startFlag)
		}
		start = parsed
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return runTimer(mode, start, precise, logger)
}

// runTimer owns the timer for the whole session. Keys arrive over a
// channel from the reader goroutine and are applied here, between
// polls, so the timer is never touched concurrently.
func runTimer(mode timer.Mode, start time.Duration, precise bool, logger *slog.Logger) error {
	stdinFd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(stdinFd)
	if err != nil {
		return cli.Internal("set terminal raw mode: %w", err)
	}
	defer term.Restore(stdinFd, oldState)

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChannel
		term.Restore(stdinFd, oldState)
		fmt.Print("\r\n")
		os.Exit(0)
	}()

	keys := make(chan byte, 8)
	go readKeys(os.Stdin, keys, logger)

	wall := wallclock.Real()
	clock := timer.New(mode, start, wall)
	clock.Start()

	ticker := wall.NewTicker(pollInterval)
	defer ticker.Stop()

	format := timefmt.Clock
	if precise {
		format = timefmt.Precise
	}

	for {
		clock.Update()
		if clock.State() != timer.Running {
			break
		}
		fmt.Printf("\r%sTimer: %s", ansi.EraseEntireLine, format(clock.Read()))

		select {
		case <-ticker.C:
		case key := <-keys:
			applyKey(clock, start, key)
		}
	}

	fmt.Printf("\r%sTimer stopped at %s\r\n", ansi.EraseEntireLine, format(clock.Read()))
	return nil
}

// applyKey maps a keystroke to a timer operation. Unknown keys are
// ignored; escape sequences never get this far (readKeys consumes
// them).
func applyKey(clock *timer.Timer, start time.Duration, key byte) {
	switch key {
	case 'q', 3: // ctrl+c arrives as a raw byte in raw mode
		clock.Stop()
	case 'r':
		clock.Reset(start)
		clock.Start()
	case ']':
		clock.Add(time.Second)
	case '[':
		clock.Subtract(time.Second)
	case '\'':
		clock.Add(time.Minute)
	case ';':
		clock.Subtract(time.Minute)
	case '.':
		clock.Add(time.Hour)
	case ',':
		clock.Subtract(time.Hour)
	}
}

// readKeys forwards single bytes from stdin to the key channel,
// consuming escape sequences whole: in raw mode an arrow or function
// key arrives as "ESC [ ..." and the bracket and semicolon bytes
// inside it must not reach the bindings. The goroutine exits on read
// failure; the main loop then runs on the ticker alone and only q or
// a signal can end the session.
func readKeys(input io.Reader, keys chan<- byte, logger *slog.Logger) {
	buffer := make([]byte, 1)
	next := func() (byte, bool) {
		for {
			n, err := input.Read(buffer)
			if err != nil {
				if err != io.EOF {
					logger.Warn("stdin read failed", "error", err)
				}
				return 0, false
			}
			if n == 1 {
				return buffer[0], true
			}
		}
	}
	for {
		key, ok := next()
		if !ok {
			return
		}
		if key == 0x1b {
			if !discardEscapeSequence(next) {
				return
			}
			continue
		}
		keys <- key
	}
}

// discardEscapeSequence reads past the escape sequence whose lead ESC
// byte was just consumed. A CSI sequence ("ESC [ parameters final",
// the arrow, Home/End, page, and higher function keys) runs through
// the first byte in the final range @ through ~, and an SS3 sequence
// ("ESC O x", F1 through F4) is a single byte. Anything else is an
// alt-modified key, dropped along with its prefix. Reports false when
// the input ends mid-sequence.
func discardEscapeSequence(next func() (byte, bool)) bool {
	key, ok := next()
	if !ok {
		return false
	}
	switch key {
	case '[':
		for {
			key, ok = next()
			if !ok {
				return false
			}
			if key >= '@' && key <= '~' {
				return true
			}
		}
	case 'O':
		_, ok = next()
		return ok
	default:
		return true
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Single timer — a stopwatch or countdown on one terminal line.

The timer starts immediately. A countdown stops itself at zero; a
stopwatch runs until stopped. The line is rewritten in place at 50ms.

Keys:
  q          stop the timer and quit
  r          reset to the starting value and restart
  ] / [      add / subtract one second
  ' / ;      add / subtract one minute
  . / ,      add / subtract one hour

Usage:
  chessclock-timer [flags]

Examples:
  # Ten-minute countdown
  chessclock-timer

  # Three-minute egg timer with hundredths
  chessclock-timer --start 3m --precise

  # Stopwatch
  chessclock-timer --mode up

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
