package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

// Messages shown instead of the table
const (
	MsgLoadError = "Something went wrong"
	MsgNoPeople  = "There are no people on the server"
	MsgNoMatches = "There are no people matching the current search criteria"
)

var (
	// Color palette
	purple = lipgloss.Color("99") // for borders
	pink   = lipgloss.Color("205")
	cyan   = lipgloss.Color("86")
	white  = lipgloss.Color("255")
	green  = lipgloss.Color("82")
	yellow = lipgloss.Color("220")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(pink)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(cyan)

	headerStyle = lipgloss.NewStyle().
			Foreground(pink).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(white)

	femaleRowStyle = lipgloss.NewStyle().
			Foreground(ColorFemale)

	statStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(purple)

	highlightStyle = lipgloss.NewStyle().
			Foreground(yellow).
			Bold(true)
)

// PrintHeader prints the location and counts above a report
func PrintHeader(w io.Writer, location string, shown, total int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("People at "+location))
	fmt.Fprintln(w, subtitleStyle.Render(fmt.Sprintf("Showing %s of %d people",
		statStyle.Render(fmt.Sprintf("%d", shown)), total)))
	fmt.Fprintln(w)
}

// reportWidths are the column widths for Name, Sex, Born, Died, Mother, Father
var reportWidths = []int{26, 3, 4, 4, 26, 26}

// PrintPeopleTable prints a styled table of people.
// The row whose slug equals selected is highlighted.
//
// This is a CLI report (non-interactive): the table structure is plain string
// formatting and lipgloss only colors the output text.
func PrintPeopleTable(w io.Writer, rows []PersonRow, selected string) {
	totalWidth := 1
	for _, cw := range reportWidths {
		totalWidth += cw + 3
	}
	separator := strings.Repeat("─", totalWidth-2)

	fmt.Fprintln(w, borderStyle.Render("┌"+separator+"┐"))
	fmt.Fprintln(w, headerStyle.Render(formatReportRow([]string{"Name", "Sex", "Born", "Died", "Mother", "Father"})))
	fmt.Fprintln(w, borderStyle.Render("├"+separator+"┤"))

	for _, r := range rows {
		line := formatReportRow(r.Cells())
		switch {
		case selected != "" && r.Person.Slug == selected:
			fmt.Fprintln(w, highlightStyle.Render(line))
		case r.IsFemale():
			fmt.Fprintln(w, femaleRowStyle.Render(line))
		default:
			fmt.Fprintln(w, rowStyle.Render(line))
		}
	}

	fmt.Fprintln(w, borderStyle.Render("└"+separator+"┘"))
	fmt.Fprintln(w)
}

func formatReportRow(cells []string) string {
	var b strings.Builder
	b.WriteString("│")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(padToWidth(truncateToWidth(cell, reportWidths[i]), reportWidths[i]))
		b.WriteString(" │")
	}
	return b.String()
}

// PrintMessage prints one of the table replacement messages
func PrintMessage(w io.Writer, message string) {
	fmt.Fprintln(w, subtitleStyle.Render(message))
}

// PrintBookmarks lists saved bookmarks
func PrintBookmarks(w io.Writer, bookmarks []models.Bookmark) {
	if len(bookmarks) == 0 {
		fmt.Fprintln(w, subtitleStyle.Render("No bookmarks saved"))
		return
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Bookmarks (%d)", len(bookmarks))))
	for _, b := range bookmarks {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			statStyle.Render(b.Name),
			rowStyle.Render(b.Location),
			subtitleStyle.Render(b.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+message))
}
