package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		// Keep printable characters and normal whitespace
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// PromptForBookmark asks the user to pick one bookmark and returns its id
func PromptForBookmark(title string, bookmarks []models.Bookmark) (string, error) {
	if len(bookmarks) == 0 {
		return "", errors.New("no bookmarks saved")
	}

	opts := make([]huh.Option[string], len(bookmarks))
	for i, b := range bookmarks {
		label := fmt.Sprintf("%s  %s", b.Name, DimStyle.Render(b.Location))
		opts[i] = huh.NewOption(label, b.ID)
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&id),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return id, nil
}

// ConfirmDeleteBookmark asks before deleting a bookmark
func ConfirmDeleteBookmark(b models.Bookmark) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete bookmark %q?", b.Name)).
				Description(b.Location).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirm, nil
}

// PromptForFilename asks user for an export filename
func PromptForFilename(defaultName string) (string, error) {
	var filename string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export Filename").
				Description("Enter the filename for the markdown export").
				Placeholder(defaultName).
				Value(&filename),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return normalizeFilename(filename, defaultName), nil
}

// normalizeFilename applies the default name and the .md extension
func normalizeFilename(filename, defaultName string) string {
	filename = strings.TrimSpace(sanitizeInput(filename))
	if filename == "" {
		filename = defaultName
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".md") {
		filename += ".md"
	}
	return filename
}
