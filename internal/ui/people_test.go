package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to the model and returns the last command
func press(m PeopleModel, keys ...tea.KeyMsg) (PeopleModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(PeopleModel)
	}
	return m, cmd
}

func send(m PeopleModel, msg tea.Msg) PeopleModel {
	next, _ := m.Update(msg)
	return next.(PeopleModel)
}

func newModel(t *testing.T, start string, store BookmarkStore) PeopleModel {
	t.Helper()
	loc, err := query.ParseLocation(start)
	require.NoError(t, err)
	return NewPeopleModel(PeopleOptions{
		Fetcher:   stubFetcher{people: fixture()},
		Store:     store,
		Start:     loc,
		ExportDir: t.TempDir(),
	})
}

// loadedModel starts at start and delivers the fixture as the fetch result
func loadedModel(t *testing.T, start string) PeopleModel {
	t.Helper()
	m := newModel(t, start, nil)
	require.True(t, m.fetchStarted)
	return send(m, peopleLoadedMsg{id: m.fetchID, people: fixture()})
}

func rowSlugs(m PeopleModel) []string {
	out := make([]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Person.Slug
	}
	return out
}

func TestPeopleModelLoading(t *testing.T) {
	m := newModel(t, "/people?sex=f", nil)

	assert.True(t, m.loading)
	assert.NotNil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Loading people...")
	assert.NotContains(t, view, "Centuries")

	// Filters are inert until the list arrives
	m, _ = press(m, keyRunes("m"))
	assert.Equal(t, "/people?sex=f", m.Location().String())
}

func TestPeopleModelFetchStartsOnFirstPeopleVisit(t *testing.T) {
	m := newModel(t, "/", nil)
	assert.False(t, m.fetchStarted)
	assert.Contains(t, m.View(), "Home Page")

	m, cmd := press(m, keyRunes("p"))
	assert.Equal(t, "/people", m.Location().String())
	assert.True(t, m.fetchStarted)
	require.NotNil(t, cmd)

	msg, ok := cmd().(peopleLoadedMsg)
	require.True(t, ok)
	m = send(m, msg)
	assert.Len(t, m.rows, len(fixture()))

	// Going home and back does not fetch again
	m, _ = press(m, keyRunes("h"))
	m, cmd = press(m, keyRunes("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.fetchID)
}

func TestPeopleModelLoadError(t *testing.T) {
	m := newModel(t, "/people", nil)
	m = send(m, peopleLoadedMsg{id: m.fetchID, err: errors.New("boom")})

	view := m.View()
	assert.Contains(t, view, MsgLoadError)
	assert.NotContains(t, view, MsgNoPeople)
	assert.NotContains(t, view, "Name ↕")
}

func TestPeopleModelEmptyStates(t *testing.T) {
	m := newModel(t, "/people", nil)
	m = send(m, peopleLoadedMsg{id: m.fetchID, people: []models.Person{}})
	assert.Contains(t, m.View(), MsgNoPeople)
	assert.NotContains(t, m.View(), "Centuries")

	m = loadedModel(t, "/people?query=nobody")
	assert.Contains(t, m.View(), MsgNoMatches)
	assert.Contains(t, m.View(), "Centuries")
}

func TestPeopleModelIgnoresStaleResults(t *testing.T) {
	m := newModel(t, "/people", nil)
	m = send(m, peopleLoadedMsg{id: m.fetchID + 1, people: fixture()})
	assert.True(t, m.loading)
	assert.Empty(t, m.rows)
}

func TestPeopleModelQuit(t *testing.T) {
	store := &memStore{}
	m := newModel(t, "/people?sex=m", store)

	m, cmd := press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting)
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
	assert.Equal(t, "/people?sex=m", store.last)
	assert.Empty(t, m.View())

	// A result arriving after quit is dropped
	m = send(m, peopleLoadedMsg{id: m.fetchID, people: fixture()})
	assert.Empty(t, m.rows)
}

func TestPeopleModelFilters(t *testing.T) {
	m := loadedModel(t, "/people")

	m, _ = press(m, keyRunes("m"))
	assert.Equal(t, "/people?sex=m", m.Location().String())
	for _, r := range m.rows {
		assert.Equal(t, models.SexMale, r.Person.Sex)
	}

	m, _ = press(m, keyRunes("8"), keyRunes("9"))
	assert.Equal(t, "/people?centuries=18&centuries=19&sex=m", m.Location().String())
	assert.Equal(t, []string{"carolus-haverbeke-1832", "jan-van-brussel-1714", "jan-frans-van-brussel-1761"}, rowSlugs(m))

	m, _ = press(m, keyRunes("8"))
	assert.Equal(t, "/people?centuries=19&sex=m", m.Location().String())

	m, _ = press(m, keyRunes("c"), keyRunes("a"))
	assert.Equal(t, "/people", m.Location().String())
	assert.Len(t, m.rows, len(fixture()))

	m, _ = press(m, keyRunes("f"), keyRunes("r"))
	assert.Equal(t, "/people", m.Location().String())
}

func TestPeopleModelFilterHint(t *testing.T) {
	m := loadedModel(t, "/people?sort=born")
	assert.NotContains(t, m.getHelpText(), "filters on")

	m, _ = press(m, keyRunes("f"))
	assert.Contains(t, m.getHelpText(), "filters on")

	m, _ = press(m, keyRunes("r"))
	assert.Equal(t, "/people", m.Location().String())
	assert.NotContains(t, m.getHelpText(), "filters on")
}

func TestPeopleModelCenturyToggleZeroPadded(t *testing.T) {
	m := loadedModel(t, "/people?centuries=019")
	assert.Equal(t, []string{"carolus-haverbeke-1832", "emma-de-milliano-1876"}, rowSlugs(m))

	m, _ = press(m, keyRunes("9"))
	assert.Equal(t, "/people", m.Location().String())
	assert.Len(t, m.rows, len(fixture()))
}

func TestPeopleModelSortCycle(t *testing.T) {
	m := loadedModel(t, "/people?sex=m")

	m, _ = press(m, keyRunes("b"))
	assert.Equal(t, "/people?sex=m&sort=born", m.Location().String())
	assert.Equal(t, []string{
		"jan-van-brussel-1714", "jan-frans-van-brussel-1761", "carolus-haverbeke-1832", "philibert-haverbeke-1907",
	}, rowSlugs(m))
	assert.Contains(t, m.View(), "Born ▲")

	m, _ = press(m, keyRunes("b"))
	assert.Equal(t, "/people?order=desc&sex=m&sort=born", m.Location().String())
	assert.Equal(t, "philibert-haverbeke-1907", m.rows[0].Person.Slug)
	assert.Contains(t, m.View(), "Born ▼")

	m, _ = press(m, keyRunes("b"))
	assert.Equal(t, "/people?sex=m", m.Location().String())

	// A different column starts ascending again
	m, _ = press(m, keyRunes("b"), keyRunes("b"), keyRunes("n"))
	assert.Equal(t, "/people?sex=m&sort=name", m.Location().String())
}

func TestPeopleModelSearch(t *testing.T) {
	m := loadedModel(t, "/people")

	m, _ = press(m, keyRunes("/"))
	require.Equal(t, peopleViewSearch, m.viewMode)

	m, _ = press(m, keyRunes("e"))
	assert.Equal(t, "/people?query=e", m.Location().String())
	m, _ = press(m, keyRunes("m"))
	assert.Equal(t, "/people?query=em", m.Location().String())
	assert.Equal(t, []string{"emma-de-milliano-1876", "philibert-haverbeke-1907"}, rowSlugs(m))

	// Keys typed while searching are text, not filters
	assert.Empty(t, m.Location().Query.Get(query.ParamSex))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, peopleViewBrowse, m.viewMode)
	assert.Equal(t, "/people?query=em", m.Location().String())

	// One history entry for the whole search
	m, _ = press(m, keyRunes("["))
	assert.Equal(t, "/people", m.Location().String())
	m, _ = press(m, keyRunes("]"))
	assert.Equal(t, "/people?query=em", m.Location().String())

	// Clearing the text removes the parameter
	m, _ = press(m, keyRunes("/"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/people", m.Location().String())
}

func TestPeopleModelSelectAndFollowParents(t *testing.T) {
	m := loadedModel(t, "/people/philibert-haverbeke-1907?sex=m")

	row, ok := m.cursorRow()
	require.True(t, ok)
	assert.Equal(t, "philibert-haverbeke-1907", row.Person.Slug)
	assert.Contains(t, m.View(), "→ Emma de Milliano")

	style, ok := m.rowStyle(m.table.Cursor())
	assert.True(t, ok)
	assert.Equal(t, MarkedStyle, style)

	m, _ = press(m, keyRunes("F"))
	assert.Equal(t, "/people/philibert-haverbeke-1907?sex=m", m.Location().String())
	assert.Contains(t, m.StatusMsg, "Emile Haverbeke")

	m, _ = press(m, keyRunes("M"))
	assert.Equal(t, "/people/emma-de-milliano-1876?sex=m", m.Location().String())

	// Emma is filtered out of the table but the detail pane still shows her
	view := m.View()
	assert.Contains(t, view, "Emma de Milliano (1876-1956)")
	assert.Contains(t, view, "Philibert Haverbeke")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/people?sex=m", m.Location().String())

	// The cursor stays where it was and moves from there
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/people/jan-frans-van-brussel-1761?sex=m", m.Location().String())
}

func TestPeopleModelNavbar(t *testing.T) {
	m := loadedModel(t, "/people/emma-de-milliano-1876?sex=f")

	m, _ = press(m, keyRunes("p"))
	assert.Equal(t, "/people?sex=f", m.Location().String())

	m, _ = press(m, keyRunes("h"))
	assert.Equal(t, "/", m.Location().String())
	assert.Contains(t, m.View(), "Home Page")

	m, _ = press(m, keyRunes("p"))
	assert.Equal(t, "/people", m.Location().String())

	m, _ = press(m, keyRunes("["), keyRunes("["))
	assert.Equal(t, "/people?sex=f", m.Location().String())
	assert.Len(t, m.rows, 2)
}

func TestPeopleModelNotFound(t *testing.T) {
	m := newModel(t, "/nowhere", nil)
	assert.False(t, m.fetchStarted)
	assert.Contains(t, m.View(), "Page not found")
}

func TestPeopleModelGoto(t *testing.T) {
	m := newModel(t, "/", nil)

	m, _ = press(m, keyRunes("g"))
	require.Equal(t, peopleViewGoto, m.viewMode)
	assert.Equal(t, "/", m.gotoInput.Value())

	m.gotoInput.SetValue("https://example.com/#/people?sex=m&centuries=20")
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, peopleViewBrowse, m.viewMode)
	require.NotNil(t, cmd)
	m = send(m, cmd())
	assert.Equal(t, "/people?centuries=20&sex=m", m.Location().String())
	assert.Equal(t, []string{"philibert-haverbeke-1907"}, rowSlugs(m))
}

func TestPeopleModelBookmarks(t *testing.T) {
	store := &memStore{}
	m := newModel(t, "/people", store)
	m = send(m, peopleLoadedMsg{id: m.fetchID, people: fixture()})
	m, _ = press(m, keyRunes("f"))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.Equal(t, peopleViewBookmarkName, m.viewMode)

	m, cmd := press(m, keyRunes("w"), keyRunes("o"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = send(m, cmd())
	assert.Contains(t, m.StatusMsg, `"wo"`)
	require.Len(t, store.bookmarks, 1)
	assert.Equal(t, "/people?sex=f", store.bookmarks[0].Location)

	m, _ = press(m, keyRunes("r"))
	assert.Equal(t, "/people", m.Location().String())

	m, cmd = press(m, keyRunes("B"))
	require.Equal(t, peopleViewBookmarks, m.viewMode)
	m = send(m, cmd())
	assert.Contains(t, m.View(), "wo")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, peopleViewBrowse, m.viewMode)
	assert.Equal(t, "/people?sex=f", m.Location().String())

	m, cmd = press(m, keyRunes("B"))
	m = send(m, cmd())
	m, cmd = press(m, keyRunes("x"))
	m = send(m, cmd())
	assert.Empty(t, store.bookmarks)
	assert.Contains(t, m.StatusMsg, "Deleted")
}

func TestPeopleModelBookmarksNeedStore(t *testing.T) {
	m := loadedModel(t, "/people")
	m, cmd := press(m, keyRunes("B"))
	assert.Nil(t, cmd)
	assert.Equal(t, peopleViewBrowse, m.viewMode)
	assert.NotEmpty(t, m.StatusMsg)
}

func TestPeopleModelExport(t *testing.T) {
	m := loadedModel(t, "/people?sex=f")
	m, _ = press(m, keyRunes("e"))
	assert.Contains(t, m.StatusMsg, "Exported 2 people")
}

func TestPeopleModelFemaleRows(t *testing.T) {
	m := loadedModel(t, "/people")

	style, ok := m.rowStyle(1) // Emma
	assert.True(t, ok)
	assert.Equal(t, FemaleStyle, style)

	_, ok = m.rowStyle(0) // Carolus
	assert.False(t, ok)
}

func TestPeopleModelResize(t *testing.T) {
	m := loadedModel(t, "/people")
	m = send(m, tea.WindowSizeMsg{Width: 200, Height: 60})
	assert.Equal(t, MaxViewportWidth, m.Layout.ViewportWidth)
	assert.Equal(t, 60, m.Layout.ViewportHeight)
	assert.Equal(t, 45, m.Layout.TableHeight)
}
