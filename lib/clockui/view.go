// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clockui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/chessclock/lib/chessclock"
	"github.com/bureau-foundation/chessclock/lib/timefmt"
)

// settingsLabelWidth aligns the form labels.
const settingsLabelWidth = 16

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}
	if model.screen == ScreenSettings {
		return model.viewSettings()
	}
	return model.viewClock()
}

// viewSettings renders the match configuration form.
func (model Model) viewSettings() string {
	title := renderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("Chess Clock")

	rows := []string{
		model.renderFieldRow(rowPlayer1Minutes),
		model.renderFieldRow(rowPlayer2Minutes),
		model.renderFieldRow(rowIncrementSeconds),
		model.renderSelectorRow(rowMethod, model.method),
		model.renderSelectorRow(rowStarter, model.starter),
		model.renderStartRow(),
	}

	help := renderer.NewStyle().Foreground(model.theme.HelpText).
		Render("Tab/↓ next  S-Tab/↑ previous  ←/→ change  Enter confirm  C-s save defaults  q quit")

	sections := []string{title, "", strings.Join(rows, "\n"), "", help}
	if model.saveNotice != "" {
		color := model.theme.StatusRunning
		if model.saveFailed {
			color = model.theme.StatusFinished
		}
		sections = append(sections,
			renderer.NewStyle().Foreground(color).Render(model.saveNotice))
	}

	return model.centered(strings.Join(sections, "\n"))
}

// renderFieldRow draws one numeric entry: label, input with cursor
// when focused, unit.
func (model Model) renderFieldRow(row int) string {
	field := model.fields[row]
	focused := model.focusRow == row

	label := renderer.NewStyle().
		Foreground(model.theme.FaintText).
		Width(settingsLabelWidth).
		Render(field.Label)

	inputStyle := renderer.NewStyle().Foreground(model.theme.NormalText)
	input := field.Input
	if focused {
		cursor := renderer.NewStyle().
			Foreground(model.theme.FocusedForeground).
			Bold(true).
			Render("▎")
		input = inputStyle.Bold(true).Render(field.Input) + cursor
	} else {
		input = inputStyle.Render(input)
	}

	unit := renderer.NewStyle().Foreground(model.theme.FaintText).Render(" " + field.Unit)
	return model.focusMarker(focused) + label + input + unit
}

// renderSelectorRow draws a two-value picker row.
func (model Model) renderSelectorRow(row int, selector Selector) string {
	focused := model.focusRow == row

	label := renderer.NewStyle().
		Foreground(model.theme.FaintText).
		Width(settingsLabelWidth).
		Render(selector.Label)

	valueStyle := renderer.NewStyle().Foreground(model.theme.NormalText)
	if focused {
		valueStyle = valueStyle.Foreground(model.theme.FocusedForeground).Bold(true)
	}
	value := valueStyle.Render("◂ " + selector.Value() + " ▸")

	return model.focusMarker(focused) + label + value
}

// renderStartRow draws the confirmation row at the bottom of the form.
func (model Model) renderStartRow() string {
	focused := model.focusRow == rowStart

	style := renderer.NewStyle().Foreground(model.theme.FaintText)
	if focused {
		style = renderer.NewStyle().Foreground(model.theme.StatusRunning).Bold(true)
	}
	return "\n" + model.focusMarker(focused) + style.Render("[ Start match ]")
}

// focusMarker draws the two-column gutter that points at the focused
// row.
func (model Model) focusMarker(focused bool) string {
	if focused {
		return renderer.NewStyle().
			Foreground(model.theme.FocusedForeground).
			Render("> ")
	}
	return "  "
}

// viewClock renders the two player panels with the match footer.
func (model Model) viewClock() string {
	player1, player2 := model.clock.Read()
	status := model.clock.Status()
	active := model.clock.ActivePlayer()

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		model.renderPanel(chessclock.Player1, player1, status, active),
		"  ",
		model.renderPanel(chessclock.Player2, player2, status, active),
	)

	condition := renderer.NewStyle().
		Foreground(model.theme.StatusColor(status)).
		Bold(true).
		Render(strings.ToUpper(status.String()))

	rules := model.clock.Rules()
	detail := renderer.NewStyle().Foreground(model.theme.FaintText).
		Render(fmt.Sprintf("%s, %s increment", rules.Method, timefmt.Clock(rules.Increment)))

	help := renderer.NewStyle().Foreground(model.theme.HelpText).
		Render("Enter start/stop  Space switch  BS finish  s settings  q quit")

	sections := []string{panels, "", condition + "  " + detail, help}
	return model.centered(strings.Join(sections, "\n"))
}

// renderPanel draws one player's clock face. The active player's
// panel carries the condition color; a flagged player shows red
// regardless of whose turn it is.
func (model Model) renderPanel(player chessclock.Player, remaining time.Duration, status chessclock.Status, active chessclock.Player) string {
	format := timefmt.Clock
	if model.precise {
		format = timefmt.Precise
	}

	accent := model.theme.BorderColor
	nameColor := model.theme.FaintText
	switch {
	case remaining == 0 && status == chessclock.StatusFinished:
		accent = model.theme.StatusFinished
		nameColor = model.theme.StatusFinished
	case player == active:
		accent = model.theme.StatusColor(status)
		nameColor = model.theme.NormalText
	}

	name := renderer.NewStyle().Foreground(nameColor).Bold(player == active).
		Render(player.String())
	face := renderer.NewStyle().Foreground(model.theme.NormalText).Bold(true).
		Render(format(remaining))

	marker := " "
	if player == active && status != chessclock.StatusFinished {
		marker = renderer.NewStyle().Foreground(accent).Render("●")
	}

	body := name + " " + marker + "\n" + face
	return renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(body)
}

// centered places content in the middle of the window when the size
// is known, falling back to raw content for undersized terminals.
func (model Model) centered(content string) string {
	if model.width <= 0 || model.height <= 0 {
		return content
	}
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, content)
}
