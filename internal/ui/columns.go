package ui

// columns.go provides generic column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating percentage-based math.

import (
	"net/url"

	"github.com/charmbracelet/bubbles/table"

	"github.com/thesavant42/peoplesome-ng/internal/query"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are allocated.
//
// Example:
//
//	columns := CalculateColumns([]ColumnSpec{
//	    {Title: "Name", FlexRatio: 30, MinWidth: 20},
//	    {Title: "Mother", FlexRatio: 40, MinWidth: 25},
//	    {Title: "Born", FixedWidth: 10},
//	}, layout.TableWidth)
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	// bubbles/table pads every cell with one space on each side
	remaining := totalWidth - fixedTotal - 2*len(specs)
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// Sort indicator glyphs for header titles
const (
	sortGlyphOff  = "↕"
	sortGlyphUp   = "▲"
	sortGlyphDown = "▼"
)

// sortTitle decorates a sortable header with its current sort indicator
func sortTitle(title string, values url.Values, field query.Field) string {
	switch query.SortIcon(values, field) {
	case query.SortUp:
		return title + " " + sortGlyphUp
	case query.SortDown:
		return title + " " + sortGlyphDown
	default:
		return title + " " + sortGlyphOff
	}
}

// PeopleColumns returns column specs for the people table.
// Sortable headers carry the indicator for the current query.
func PeopleColumns(values url.Values) []ColumnSpec {
	return []ColumnSpec{
		{Title: sortTitle("Name", values, query.FieldName), FlexRatio: 30, MinWidth: 18},
		{Title: sortTitle("Sex", values, query.FieldSex), FixedWidth: 6},
		{Title: sortTitle("Born", values, query.FieldBorn), FixedWidth: 7},
		{Title: sortTitle("Died", values, query.FieldDied), FixedWidth: 7},
		{Title: "Mother", FlexRatio: 35, MinWidth: 16},
		{Title: "Father", FlexRatio: 35, MinWidth: 16},
	}
}

// BookmarkColumns returns column specs for the bookmark list.
func BookmarkColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Name", FlexRatio: 40, MinWidth: 16},
		{Title: "Location", FlexRatio: 60, MinWidth: 20},
		{Title: "Saved", FixedWidth: 16},
	}
}
