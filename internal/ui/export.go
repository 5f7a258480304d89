package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

// ExportFilename returns the default markdown export name for a point in time
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("people-%s.md", now.Format("20060102-150405"))
}

// GeneratePeopleMarkdown renders the derived view at loc as a markdown document.
// total is the size of the unfiltered list.
func GeneratePeopleMarkdown(loc query.Location, rows []PersonRow, total int, generated time.Time) string {
	var sb strings.Builder

	sb.WriteString("# People\n\n")
	sb.WriteString(fmt.Sprintf("**Location:** `%s`\n", loc.String()))
	sb.WriteString(fmt.Sprintf("**Showing:** %d of %d\n", len(rows), total))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", generated.Format("2006-01-02 15:04:05")))

	writeFilterSummary(&sb, loc.State())
	writePeopleTable(&sb, loc, rows, total)

	return sb.String()
}

// BookmarkView is one bookmark with its derived rows, for GenerateBookmarksMarkdown
type BookmarkView struct {
	Bookmark models.Bookmark
	Location query.Location
	Rows     []PersonRow
}

// GenerateBookmarksMarkdown renders every bookmark's derived view as sections of one document
func GenerateBookmarksMarkdown(views []BookmarkView, total int, generated time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Bookmarked People Views\n\n")
	sb.WriteString(fmt.Sprintf("**Bookmarks:** %d\n", len(views)))
	sb.WriteString(fmt.Sprintf("**People on the server:** %d\n", total))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", generated.Format("2006-01-02 15:04:05")))

	for _, v := range views {
		sb.WriteString(fmt.Sprintf("## %s\n\n", escapeMarkdown(v.Bookmark.Name)))
		sb.WriteString(fmt.Sprintf("`%s`, %d of %d\n\n", v.Location.String(), len(v.Rows), total))
		writeFilterSummary(&sb, v.Location.State())
		writePeopleTable(&sb, v.Location, v.Rows, total)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeFilterSummary(sb *strings.Builder, state query.State) {
	var parts []string
	if state.Sex != "" {
		parts = append(parts, "sex "+string(state.Sex))
	}
	if state.Query != "" {
		parts = append(parts, fmt.Sprintf("text %q", state.Query))
	}
	if len(state.Centuries) > 0 {
		cs := make([]string, len(state.Centuries))
		for i, c := range state.Centuries {
			cs[i] = fmt.Sprintf("%d", c)
		}
		parts = append(parts, "centuries "+strings.Join(cs, ", "))
	}
	if state.Sort != query.FieldNone {
		order := "ascending"
		if state.Order == query.OrderDesc {
			order = "descending"
		}
		parts = append(parts, fmt.Sprintf("sorted by %s %s", state.Sort, order))
	}
	if len(parts) == 0 {
		return
	}
	sb.WriteString("**Filters:** " + strings.Join(parts, "; ") + "\n\n")
}

func writePeopleTable(sb *strings.Builder, loc query.Location, rows []PersonRow, total int) {
	if len(rows) == 0 {
		sb.WriteString(EmptyMessage(total) + "\n")
		return
	}

	sb.WriteString("| Name | Sex | Born | Died | Mother | Father |\n")
	sb.WriteString("|------|-----|------|------|--------|--------|\n")

	selected := loc.Slug()
	for _, r := range rows {
		name := escapeMarkdown(r.Person.Name)
		if r.Person.Slug == selected {
			name = "**" + name + "**"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %s | %s |\n",
			name, r.Person.Sex, r.Person.Born, r.Person.Died,
			markdownParent(loc, r.Mother), markdownParent(loc, r.Father)))
	}
}

// markdownParent links resolved parents to their location, keeping the query
func markdownParent(loc query.Location, c ParentCell) string {
	switch {
	case c.Absent():
		return "-"
	case c.Linked():
		return fmt.Sprintf("[%s](%s)", escapeMarkdown(c.Name), loc.WithSlug(c.Slug).String())
	default:
		return escapeMarkdown(c.Name)
	}
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// ExportPeopleMarkdown writes content to filename atomically
func ExportPeopleMarkdown(filename, content string) error {
	if err := atomic.WriteFile(filename, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}
	return nil
}
