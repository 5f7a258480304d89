package ui

// base_model.go provides common TUI helpers for Bubble Tea models.

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// InitTable creates and configures a table with proper styling and dimensions.
// Use this instead of calling table.New() directly.
//
// Example:
//
//	columns := CalculateColumns(PeopleColumns(values), layout.TableWidth)
//	m.table = InitTable(columns, nil, layout.TableHeight)
func InitTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	ApplyTableStyles(&t)
	t.GotoTop()

	return t
}

// HandleQuitKeysNoEsc returns true and Quit cmd for q/ctrl+c keys (not esc).
// Use when esc has special meaning (e.g., cancel input mode).
func HandleQuitKeysNoEsc(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}

// HandleNavigationKeys handles standard up/down/j/k navigation.
// Returns new cursor position (clamped to valid range).
func HandleNavigationKeys(key string, cursor, maxItems int) int {
	switch key {
	case "up", "k":
		if cursor > 0 {
			return cursor - 1
		}
	case "down", "j":
		if cursor < maxItems-1 {
			return cursor + 1
		}
	}
	return cursor
}
