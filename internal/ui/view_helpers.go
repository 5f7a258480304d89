package ui

// view_helpers.go provides common View() rendering helpers.

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// RowStyler picks a style for a non-cursor row by its index into t.Rows().
// ok=false renders the row normally.
type RowStyler func(row int) (style lipgloss.Style, ok bool)

// RenderTableWithSelection renders a bubbles table with full-width selection highlight.
// The table's Selected style should use a neutral background,
// and this function applies the visible selection styling.
//
// styler may color individual rows; nil renders them all normally.
// The cursor row always uses SelectedStyle.
//
// bubbles/table View() output:
//   - Line 0: Header row
//   - Line 1+: Data rows (only visible rows due to viewport scrolling)
//
// A divider is added after the header manually.
func RenderTableWithSelection(t table.Model, layout Layout, styler RowStyler) string {
	lines := strings.Split(t.View(), "\n")
	result := make([]string, 0, len(lines)+1)

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	// Match the bubbles viewport: no scrolling until the cursor passes the bottom
	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		if maxStart := totalRows - height; start > maxStart {
			start = maxStart
		}
	}

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			result = append(result, FullWidthDivider(layout.InnerWidth))
			continue
		}

		rowIndex := start + i - 1

		if totalRows == 0 || rowIndex >= totalRows {
			result = append(result, NormalStyle.Render(line))
			continue
		}
		if rowIndex == cursor {
			// Strip escape codes first so embedded resets cannot kill the background
			result = append(result, SelectedStyle.Render(fitLine(stripEscapeCodes(line), layout.InnerWidth)))
			continue
		}
		if styler != nil {
			if style, ok := styler(rowIndex); ok {
				result = append(result, style.Render(fitLine(stripEscapeCodes(line), layout.InnerWidth)))
				continue
			}
		}
		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// fitLine pads or truncates a plain line to exactly width cells
func fitLine(line string, width int) string {
	if StringWidth(line) > width {
		return truncateToWidth(line, width)
	}
	return padToWidth(line, width)
}

// CenterText centers text within given width.
// Uses StringWidth() for accurate ANSI-aware width calculation.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// TwoBoxView constructs the standard two-box layout.
//
//	┌────────────────────────┐
//	│ Main content           │  <- Red border
//	│                        │
//	└────────────────────────┘
//	┌────────────────────────┐
//	│   Centered help text   │  <- White border, 1 row
//	└────────────────────────┘
func TwoBoxView(content, helpText string, layout Layout) string {
	return BuildTwoBoxView(content, helpText, layout)
}

// FullWidthDivider returns a horizontal divider spanning the inner width.
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}

// RenderListItem renders a list item with bullet and optional selection highlight.
func RenderListItem(text string, selected bool, width int) string {
	prefix := "• "
	if selected {
		return RenderSelectedWidth(prefix+text, width)
	}
	return RenderNormal(prefix + text)
}
