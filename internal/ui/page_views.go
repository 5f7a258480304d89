package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// page_views.go provides a fluent API for building consistent page views.

// PageViewBuilder handles the boilerplate of titles, dividers, spacing, and two-box layout.
//
// Example usage:
//
//	return NewPageView(m.layout).
//	    Title("People").
//	    Navbar(tabs, active).
//	    Location(m.location.String()).
//	    Divider().
//	    Table(m.table, m.rowStyle).
//	    Status(m.StatusMsg).
//	    Help("↑/↓: navigate | Enter: select").
//	    Build()
type PageViewBuilder struct {
	layout     Layout
	content    strings.Builder
	helpText   string
	hadContent bool
}

// NewPageView creates a new PageViewBuilder with the given layout.
func NewPageView(layout Layout) *PageViewBuilder {
	return &PageViewBuilder{
		layout: layout,
	}
}

// Title adds a title line (bold white).
func (b *PageViewBuilder) Title(title string) *PageViewBuilder {
	b.content.WriteString(RenderTitle(title))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Navbar adds a row of tabs with the active one highlighted.
func (b *PageViewBuilder) Navbar(tabs []string, active int) *PageViewBuilder {
	var row strings.Builder
	for i, tab := range tabs {
		if i == active {
			row.WriteString(TabActiveStyle.Render(tab))
		} else {
			row.WriteString(TabInactiveStyle.Render(tab))
		}
	}
	b.content.WriteString(row.String())
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Location adds the current location line, the address bar of the browser.
func (b *PageViewBuilder) Location(loc string) *PageViewBuilder {
	b.content.WriteString(DimStyle.Render(" location: "))
	b.content.WriteString(NormalStyle.Render(truncateToWidth(loc, b.layout.InnerWidth-12)))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Divider adds a full-width horizontal divider.
func (b *PageViewBuilder) Divider() *PageViewBuilder {
	b.content.WriteString(FullWidthDivider(b.layout.InnerWidth))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Text adds normal text content.
func (b *PageViewBuilder) Text(text string) *PageViewBuilder {
	b.content.WriteString(NormalStyle.Render(text))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// DimText adds dimmed text content.
func (b *PageViewBuilder) DimText(text string) *PageViewBuilder {
	b.content.WriteString(DimStyle.Render(text))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// CustomContent adds custom pre-rendered content.
func (b *PageViewBuilder) CustomContent(content string) *PageViewBuilder {
	b.content.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.content.WriteString("\n")
	}
	b.hadContent = true
	return b
}

// Table adds a table with full-width selection highlighting.
// styler may be nil.
func (b *PageViewBuilder) Table(t table.Model, styler RowStyler) *PageViewBuilder {
	if b.hadContent {
		b.content.WriteString("\n")
	}
	b.content.WriteString(RenderTableWithSelection(t, b.layout, styler))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Status adds a status message (if not empty).
func (b *PageViewBuilder) Status(msg string) *PageViewBuilder {
	if msg != "" {
		if b.hadContent {
			b.content.WriteString("\n")
		}
		b.content.WriteString(StatusMsgStyle.Render(msg))
		b.content.WriteString("\n")
		b.hadContent = true
	}
	return b
}

// Error adds an error line.
func (b *PageViewBuilder) Error(msg string) *PageViewBuilder {
	if msg != "" {
		if b.hadContent {
			b.content.WriteString("\n")
		}
		b.content.WriteString(RenderError(msg))
		b.content.WriteString("\n")
		b.hadContent = true
	}
	return b
}

// Help sets the help text for the footer box.
func (b *PageViewBuilder) Help(helpText string) *PageViewBuilder {
	b.helpText = helpText
	return b
}

// Build constructs the final view string with two-box layout.
func (b *PageViewBuilder) Build() string {
	return TwoBoxView(b.content.String(), b.helpText, b.layout)
}

