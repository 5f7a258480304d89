package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth  = 90
	MaxViewportWidth  = 140
	DefaultWidth      = 110 // Used when terminal size is unknown
	DefaultHeight     = 32
	MinViewportHeight = 16
	MinTableHeight    = 3

	// TwoBoxOverhead is the number of lines the two-box frame uses:
	// main box top+bottom border, help box top+bottom border, help line
	TwoBoxOverhead = 5
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // clamped terminal height
	ContentWidth   int // ViewportWidth - border chars
	TableWidth     int // width available to table columns
	InnerWidth     int // EXACT width for content inside borders
	TableHeight    int // visible table rows for a standard page
}

// NewLayout creates a Layout from the terminal size, clamping to min/max
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	height := terminalHeight
	if height < MinViewportHeight {
		height = MinViewportHeight
	}

	// title, navbar, location, divider, filters (2), spacing, header + divider
	const pageChrome = 10
	tableHeight := height - TwoBoxOverhead - pageChrome
	if tableHeight < MinTableHeight {
		tableHeight = MinTableHeight
	}

	return Layout{
		ViewportWidth:  width,
		ViewportHeight: height,
		ContentWidth:   width - 2,
		TableWidth:     width - 4,
		InnerWidth:     width - 2,
		TableHeight:    tableHeight,
	}
}

// DefaultLayout returns a layout using the default size
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("196") // red
	ColorHighlight = lipgloss.Color("88")  // dark red background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("226") // bright yellow
	ColorAccentDim = lipgloss.Color("220") // yellow
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorLink      = lipgloss.Color("86")  // cyan
	ColorFemale    = lipgloss.Color("213") // magenta
	ColorMarked    = lipgloss.Color("23")  // dark teal background
	ColorSuccess   = lipgloss.Color("82")  // green
	ColorBlack     = lipgloss.Color("0")   // black
)

// Common styles - reusable style definitions
var (
	// Border style for main viewport.
	// Always use .Width(ViewportWidth) with NO .Padding() so the overhead stays 2 chars.
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Help box border
	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorText)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Row of the person named in the location path
	MarkedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorMarked)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	// Accent style for highlighted text (yellow)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Bold(true)

	StatusMsgStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	FemaleStyle = lipgloss.NewStyle().
			Foreground(ColorFemale)

	// Tab styles
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 2)

	// Filter chip styles
	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorAccent).
			Padding(0, 1)

	ChipInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1)
)

// =============================================================================
// Render helpers
// =============================================================================

// RenderTitle renders text as a page title
func RenderTitle(s string) string {
	return TitleStyle.Render(s)
}

// RenderNormal renders text in the normal style
func RenderNormal(s string) string {
	return NormalStyle.Render(s)
}

// RenderError renders text in the error style
func RenderError(s string) string {
	return ErrorStyle.Render(s)
}

// RenderSelectedWidth renders a selected line padded to width so the highlight spans the row
func RenderSelectedWidth(s string, width int) string {
	return SelectedStyle.Render(padToWidth(s, width))
}

// ApplyTableStyles sets the standard table styles.
// Selected uses no background; RenderTableWithSelection draws the visible highlight.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(false).
		Bold(true).
		Foreground(ColorText)
	s.Cell = s.Cell.Foreground(ColorText)
	s.Selected = s.Selected.
		Foreground(ColorText).
		Background(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)
}

// NewAppSpinner returns the white dot spinner used everywhere
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorText)
	return s
}

// BuildTwoBoxView renders content in the main red box and help text in a one-line box below it
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainHeight := layout.ViewportHeight - TwoBoxOverhead
	if mainHeight < 1 {
		mainHeight = 1
	}
	content = PadContentToHeight(strings.TrimRight(content, "\n"), mainHeight)

	main := BorderStyle.
		Width(layout.InnerWidth).
		Render(content)

	help := HelpBorderStyle.
		Width(layout.InnerWidth).
		Render(CenterText(HintStyle.Render(truncateToWidth(helpText, layout.InnerWidth)), layout.InnerWidth))

	return lipgloss.JoinVertical(lipgloss.Left, main, help)
}

// PadContentToHeight pads content with empty lines, or cuts it, to exactly height lines
func PadContentToHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// StringWidth returns the printable width of s, ignoring ANSI sequences
func StringWidth(s string) int {
	return lipgloss.Width(s)
}

// stripEscapeCodes removes ANSI escape sequences
func stripEscapeCodes(s string) string {
	return ansi.Strip(s)
}

// truncateToWidth cuts s to width cells, ending with an ellipsis when cut
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func padToWidth(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// NewAppTheme creates a huh theme matching the app's style guide
// White text, red highlights/selection
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(ColorBorder).
		SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(ColorText)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}
