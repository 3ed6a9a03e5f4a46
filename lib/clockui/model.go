// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clockui

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/chessclock/lib/chessclock"
	"github.com/bureau-foundation/chessclock/lib/settings"
	"github.com/bureau-foundation/chessclock/lib/wallclock"
)

// Screen identifies which view is active.
type Screen int

const (
	// ScreenSettings shows the match configuration form.
	ScreenSettings Screen = iota
	// ScreenClock shows the two player panels.
	ScreenClock
)

// Form row indices: the numeric fields first, then the selectors,
// then the start row.
const (
	rowPlayer1Minutes = iota
	rowPlayer2Minutes
	rowIncrementSeconds
	rowMethod
	rowStarter
	rowStart
	rowCount
)

// tickInterval is the re-render cadence while the match runs. Well
// inside the 10-100ms polling window the engine expects: fast enough
// that the precise display feels live, slow enough to cost nothing.
const tickInterval = 100 * time.Millisecond

// tickMsg drives the clock screen re-render loop. While the match is
// running, a new tick is scheduled after each one.
type tickMsg struct{}

// saveFadeMsg clears the "defaults saved" notice after a short delay.
type saveFadeMsg struct{}

// saveFadeDelay is how long the save notice stays visible.
const saveFadeDelay = 2 * time.Second

// Options configures NewModel.
type Options struct {
	// Settings seeds the form. Nil means the built-in defaults.
	Settings *settings.Settings

	// SettingsPath is where the save-defaults key writes. Empty
	// disables saving.
	SettingsPath string

	// SkipSettings opens directly on the clock screen with a match
	// built from Settings, waiting for the first start.
	SkipSettings bool

	// Wall is the match's time source. Nil means real time.
	Wall wallclock.Clock

	// Logger receives match events. Nil discards them.
	Logger *slog.Logger
}

// Model is the bubbletea model for the chess clock TUI.
type Model struct {
	wall   wallclock.Clock
	logger *slog.Logger
	theme  Theme
	keys   KeyMap

	screen Screen

	// Settings form state.
	fields       [3]Field
	method       Selector
	starter      Selector
	focusRow     int
	settingsPath string
	saveNotice   string
	saveFailed   bool

	// Match state.
	clock       *chessclock.Clock
	precise     bool
	lastStatus  chessclock.Status
	tickRunning bool

	width  int
	height int
	ready  bool
}

// NewModel builds the TUI model, seeding the form from
// options.Settings.
func NewModel(options Options) Model {
	wall := options.Wall
	if wall == nil {
		wall = wallclock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	saved := options.Settings
	if saved == nil {
		saved = settings.Default()
	}

	rules, err := saved.Rules()
	if err != nil {
		rules = chessclock.DefaultRules()
	}

	model := Model{
		wall:         wall,
		logger:       logger,
		theme:        DefaultTheme,
		keys:         DefaultKeyMap,
		screen:       ScreenSettings,
		settingsPath: options.SettingsPath,
		precise:      saved.Precise,
	}
	model.fields[rowPlayer1Minutes] = Field{Label: "Player 1 time", Unit: "min", Input: wholeUnits(rules.Player1Time, time.Minute)}
	model.fields[rowPlayer2Minutes] = Field{Label: "Player 2 time", Unit: "min", Input: wholeUnits(rules.Player2Time, time.Minute)}
	model.fields[rowIncrementSeconds] = Field{Label: "Increment", Unit: "sec", Input: wholeUnits(rules.Increment, time.Second)}
	model.method = Selector{Label: "Timing method", Options: [2]string{"Fischer", "Bronstein"}}
	if rules.Method == chessclock.Bronstein {
		model.method.Index = 1
	}
	model.starter = Selector{Label: "First move", Options: [2]string{"Player 1", "Player 2"}}
	if rules.Starter == chessclock.Player2 {
		model.starter.Index = 1
	}

	if options.SkipSettings {
		model.newMatch(rules)
	}
	return model
}

// wholeUnits renders a duration as a whole number of the given unit
// for form display.
func wholeUnits(d, unit time.Duration) string {
	return strconv.FormatInt(int64(d/unit), 10)
}

// Init implements tea.Model. The clock waits for a keypress, so there
// is nothing to start.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.screen == ScreenSettings {
			return model.handleSettingsKeys(message)
		}
		return model.handleClockKeys(message)

	case tickMsg:
		return model.handleTick()

	case saveFadeMsg:
		model.saveNotice = ""

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
	}
	return model, nil
}

// handleSettingsKeys processes keystrokes on the settings form. When
// a numeric field has focus, printable characters go into the field;
// everything else navigates.
func (model Model) handleSettingsKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits. 'q' is a regular character when a
		// text field has focus.
		if message.Type != tea.KeyCtrlC && model.focusRow < len(model.fields) {
			model.fields[model.focusRow].HandleRune('q')
			return model, nil
		}
		return model, tea.Quit

	case key.Matches(message, model.keys.SaveDefaults):
		return model.handleSaveDefaults()

	case key.Matches(message, model.keys.NextField):
		model.focusRow = (model.focusRow + 1) % rowCount

	case key.Matches(message, model.keys.PrevField):
		model.focusRow = (model.focusRow + rowCount - 1) % rowCount

	case key.Matches(message, model.keys.CycleOption):
		model.cycleFocusedSelector()

	case key.Matches(message, model.keys.Accept):
		if model.focusRow == rowStart {
			model.newMatch(model.formRules())
			return model, nil
		}
		model.focusRow++

	case message.Type == tea.KeyBackspace:
		if model.focusRow < len(model.fields) {
			model.fields[model.focusRow].HandleBackspace()
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		if model.focusRow < len(model.fields) {
			for _, r := range message.Runes {
				model.fields[model.focusRow].HandleRune(r)
			}
		} else if message.Type == tea.KeySpace {
			// Space flips a focused selector, like left/right.
			model.cycleFocusedSelector()
		}
	}
	return model, nil
}

// cycleFocusedSelector flips the selector on the focused row, if the
// focused row is a selector.
func (model *Model) cycleFocusedSelector() {
	switch model.focusRow {
	case rowMethod:
		model.method.Cycle()
	case rowStarter:
		model.starter.Cycle()
	}
}

// formRules interprets the form as match rules. Entries that do not
// parse as whole numbers count as zero.
func (model *Model) formRules() chessclock.Rules {
	rules := chessclock.Rules{
		Player1Time: time.Duration(model.fields[rowPlayer1Minutes].Value()) * time.Minute,
		Player2Time: time.Duration(model.fields[rowPlayer2Minutes].Value()) * time.Minute,
		Increment:   time.Duration(model.fields[rowIncrementSeconds].Value()) * time.Second,
		Method:      chessclock.Fischer,
		Starter:     chessclock.Player1,
	}
	if model.method.Index == 1 {
		rules.Method = chessclock.Bronstein
	}
	if model.starter.Index == 1 {
		rules.Starter = chessclock.Player2
	}
	return rules
}

// newMatch builds a fresh engine from rules and flips to the clock
// screen. The match waits stopped until the toggle key starts it.
func (model *Model) newMatch(rules chessclock.Rules) {
	model.clock = chessclock.New(rules, model.wall)
	model.screen = ScreenClock
	model.lastStatus = model.clock.Status()
	model.logger.Info("match configured",
		"player1_time", rules.Player1Time,
		"player2_time", rules.Player2Time,
		"increment", rules.Increment,
		"method", rules.Method.String(),
		"starter", rules.Starter.String(),
	)
}

// handleSaveDefaults writes the current form to the settings file.
func (model Model) handleSaveDefaults() (tea.Model, tea.Cmd) {
	if model.settingsPath == "" {
		return model, nil
	}
	saved := settings.FromRules(model.formRules(), model.precise)
	if err := saved.Save(model.settingsPath); err != nil {
		model.saveNotice = "Save failed: " + err.Error()
		model.saveFailed = true
		model.logger.Error("saving defaults failed", "path", model.settingsPath, "error", err)
	} else {
		model.saveNotice = "Defaults saved"
		model.saveFailed = false
		model.logger.Info("defaults saved", "path", model.settingsPath)
	}
	return model, tea.Tick(saveFadeDelay, func(time.Time) tea.Msg {
		return saveFadeMsg{}
	})
}

// handleClockKeys processes keystrokes on the clock screen.
func (model Model) handleClockKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Toggle):
		return model.handleToggle()

	case key.Matches(message, model.keys.Switch):
		return model.handleSwitch()

	case key.Matches(message, model.keys.Finish):
		model.clock.Update()
		if model.clock.Status() == chessclock.StatusFinished {
			return model, nil
		}
		model.clock.Finish()
		model.noteStatus()
		player1, player2 := model.clock.Read()
		model.logger.Info("match finished",
			"player1_remaining", player1,
			"player2_remaining", player2,
		)

	case key.Matches(message, model.keys.Settings):
		model.clock.Finish()
		model.screen = ScreenSettings
		model.focusRow = 0
		model.logger.Info("match abandoned")
	}
	return model, nil
}

// handleToggle starts a stopped match and pauses a running one. A
// finished match ignores the key.
func (model Model) handleToggle() (tea.Model, tea.Cmd) {
	model.clock.Update()
	model.noteStatus()
	switch model.clock.Status() {
	case chessclock.StatusRunning:
		model.clock.Stop()
		player1, player2 := model.clock.Read()
		model.logger.Info("clock stopped",
			"active", model.clock.ActivePlayer().String(),
			"player1_remaining", player1,
			"player2_remaining", player2,
		)
		return model, nil
	case chessclock.StatusStopped:
		model.clock.Start()
		model.logger.Info("clock started", "active", model.clock.ActivePlayer().String())
		return model, model.ensureTick()
	default:
		return model, nil
	}
}

// handleSwitch punches the clock over to the other player.
func (model Model) handleSwitch() (tea.Model, tea.Cmd) {
	handoff := model.clock.SwitchPlayer()
	model.noteStatus()
	if !handoff.Switched {
		return model, nil
	}
	model.logger.Info("player switched",
		"from", handoff.From.String(),
		"to", handoff.To.String(),
		"elapsed", handoff.Elapsed,
		"credit", handoff.Credit,
	)
	return model, model.ensureTick()
}

// handleTick reconciles the engine and re-renders. The loop keeps
// itself alive only while the match is running; every other condition
// lets it lapse until a key schedules it again.
func (model Model) handleTick() (tea.Model, tea.Cmd) {
	if model.screen != ScreenClock || model.clock == nil {
		model.tickRunning = false
		return model, nil
	}
	model.clock.Update()
	model.noteStatus()
	if model.clock.Status() == chessclock.StatusRunning {
		return model, scheduleTick()
	}
	model.tickRunning = false
	return model, nil
}

// ensureTick schedules the re-render loop if the match is running and
// the loop is not already alive.
func (model *Model) ensureTick() tea.Cmd {
	if model.tickRunning || model.clock.Status() != chessclock.StatusRunning {
		return nil
	}
	model.tickRunning = true
	return scheduleTick()
}

// scheduleTick returns a tea.Cmd that sends a tickMsg after the tick
// interval.
func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// noteStatus logs condition transitions, in particular the flag fall,
// which happens between keypresses and would otherwise be invisible.
func (model *Model) noteStatus() {
	status := model.clock.Status()
	if status == model.lastStatus {
		return
	}
	if status == chessclock.StatusFinished {
		player1, player2 := model.clock.Read()
		if player1 == 0 || player2 == 0 {
			flagged := chessclock.Player1
			if player2 == 0 {
				flagged = chessclock.Player2
			}
			model.logger.Info("flag fell",
				"player", flagged.String(),
				"player1_remaining", player1,
				"player2_remaining", player2,
			)
		}
	}
	model.lastStatus = status
}
