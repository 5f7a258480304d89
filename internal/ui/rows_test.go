package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

func TestParentCellText(t *testing.T) {
	assert.Equal(t, "-", ParentCell{}.Text())
	assert.Equal(t, "Emile Haverbeke", ParentCell{Name: "Emile Haverbeke"}.Text())
	assert.Equal(t, "→ Emma de Milliano", ParentCell{Name: "Emma de Milliano", Slug: "emma-de-milliano-1876"}.Text())
}

func TestBuildRows(t *testing.T) {
	_, rows := derivedRows(t, "/people?query=haverbeke")

	want := [][]string{
		{"Carolus Haverbeke", "m", "1832", "1905", "-", "-"},
		{"Philibert Haverbeke", "m", "1907", "1997", "→ Emma de Milliano", "Emile Haverbeke"},
	}
	got := make([][]string, len(rows))
	for i, r := range rows {
		got[i] = r.Cells()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "emma-de-milliano-1876", rows[1].Mother.Slug)
}

func TestBuildRowsWithoutIndex(t *testing.T) {
	rows := BuildRows(fixture(), nil)
	for _, r := range rows {
		assert.False(t, r.Mother.Linked())
		assert.False(t, r.Father.Linked())
	}
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, MsgNoPeople, EmptyMessage(0))
	assert.Equal(t, MsgNoMatches, EmptyMessage(6))
}

func TestPrintPeopleTable(t *testing.T) {
	_, rows := derivedRows(t, "/people?sex=f")

	var buf bytes.Buffer
	PrintHeader(&buf, "/people?sex=f", len(rows), 6)
	PrintPeopleTable(&buf, rows, "maria-de-rycke-1683")
	out := buf.String()

	assert.Contains(t, out, "People at /people?sex=f")
	assert.Contains(t, out, "Showing 2 of 6 people")
	assert.Contains(t, out, "│ Emma de Milliano ")
	assert.Contains(t, out, "│ Maria de Rycke ")

	// Every table line has the same width
	var widths []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") {
			widths = append(widths, StringWidth(line))
		}
	}
	assert.Len(t, widths, 4)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestPrintBookmarks(t *testing.T) {
	var buf bytes.Buffer
	PrintBookmarks(&buf, nil)
	assert.Contains(t, buf.String(), "No bookmarks saved")

	buf.Reset()
	PrintBookmarks(&buf, []models.Bookmark{{Name: "women", Location: "/people?sex=f", CreatedAt: time.Now()}})
	assert.Contains(t, buf.String(), "Bookmarks (1)")
	assert.Contains(t, buf.String(), "/people?sex=f")
}

func TestPageStateStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewPageState(DefaultLayout())
	s.now = func() time.Time { return now }

	s.SetStatus("saved", time.Second)
	assert.True(t, s.HasStatus())

	s.ClearExpiredStatus()
	assert.Equal(t, "saved", s.StatusMsg)

	now = now.Add(2 * time.Second)
	s.ClearExpiredStatus()
	assert.False(t, s.HasStatus())

	assert.False(t, s.UpdateLayout(DefaultWidth, DefaultHeight))
	assert.True(t, s.UpdateLayout(DefaultWidth+10, DefaultHeight))
}
