package ui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/nav"
	"github.com/thesavant42/peoplesome-ng/internal/people"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

// Fetcher loads the full people list. api.PeopleClient and api.FileSource implement it.
type Fetcher interface {
	FetchPeople(ctx context.Context) ([]models.Person, error)
}

// BookmarkStore persists bookmarks and the last location. *db.DB implements it.
type BookmarkStore interface {
	AddBookmark(name, location string) (models.Bookmark, error)
	GetBookmarks() ([]models.Bookmark, error)
	DeleteBookmark(id string) error
	SetLastLocation(location string) error
}

// PeopleOptions configures a PeopleModel
type PeopleOptions struct {
	Fetcher   Fetcher
	Store     BookmarkStore // nil disables bookmarks and resume
	Logger    *log.Logger   // nil discards logs
	Start     query.Location
	ExportDir string // directory for markdown exports, "" = current directory
}

type peopleViewMode int

const (
	peopleViewBrowse       peopleViewMode = iota // Table and page navigation
	peopleViewSearch                             // Typing into the search box
	peopleViewGoto                               // Typing a location
	peopleViewBookmarkName                       // Naming a new bookmark
	peopleViewBookmarks                          // Bookmark list
)

// Navbar tabs
const (
	tabHome = iota
	tabPeople
)

var navTabs = []string{"Home (h)", "People (p)"}

// Century toggle keys, in query.Centuries order
var centuryKeys = []string{"6", "7", "8", "9", "0"}

// Messages
type peopleLoadedMsg struct {
	id     int
	people []models.Person
	err    error
}

type bookmarksLoadedMsg struct {
	bookmarks []models.Bookmark
	err       error
}

type bookmarkSavedMsg struct {
	bookmark models.Bookmark
	err      error
}

type bookmarkDeletedMsg struct {
	name string
	err  error
}

// PeopleModel is the TUI model for the people browser.
// All filter and sort state lives in the current location; everything on screen
// is derived from it and the fetched list.
type PeopleModel struct {
	PageState

	fetcher   Fetcher
	store     BookmarkStore
	logger    *log.Logger
	exportDir string

	history *nav.History

	table       table.Model
	spinner     spinner.Model
	searchInput textinput.Model
	gotoInput   textinput.Model
	nameInput   textinput.Model

	viewMode peopleViewMode

	// Fetch state. A result whose id does not match fetchID is stale and ignored.
	ctx          context.Context
	cancel       context.CancelFunc
	fetchID      int
	fetchStarted bool
	loading      bool
	loadErr      error
	all          []models.Person
	index        *people.Index

	// Derived from the current location
	rows []PersonRow

	// Search session: the first keystroke pushes history, later ones replace it
	searchPushed bool

	bookmarks      []models.Bookmark
	bookmarkCursor int
}

// NewPeopleModel creates the people browser starting at opts.Start
func NewPeopleModel(opts PeopleOptions) PeopleModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := opts.Start
	if start.Path == "" {
		start = query.Location{Path: query.HomePath}
	}

	layout := DefaultLayout()

	search := textinput.New()
	search.Placeholder = "Search by name, mother or father"
	search.Prompt = ""
	search.CharLimit = 100

	gotoInput := textinput.New()
	gotoInput.Placeholder = "/people?sex=f&centuries=19"
	gotoInput.CharLimit = 500

	nameInput := textinput.New()
	nameInput.Placeholder = "Bookmark name"
	nameInput.CharLimit = 100

	ctx, cancel := context.WithCancel(context.Background())

	m := PeopleModel{
		PageState:   NewPageState(layout),
		fetcher:     opts.Fetcher,
		store:       opts.Store,
		logger:      logger,
		exportDir:   opts.ExportDir,
		history:     nav.NewHistory(start),
		table:       InitTable(CalculateColumns(PeopleColumns(start.Query), layout.TableWidth), nil, layout.TableHeight),
		spinner:     NewAppSpinner(),
		searchInput: search,
		gotoInput:   gotoInput,
		nameInput:   nameInput,
		viewMode:    peopleViewBrowse,
		ctx:         ctx,
		cancel:      cancel,
	}
	m.resizeInputs()

	if start.Page() == query.PagePeople {
		m.startFetch()
	}

	return m
}

// Init implements tea.Model
func (m PeopleModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.fetchStarted {
		cmds = append(cmds, m.fetchPeople(m.fetchID))
	}
	return tea.Batch(cmds...)
}

// Location returns the current location
func (m PeopleModel) Location() query.Location {
	return m.history.Current()
}

// Update implements tea.Model
func (m PeopleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.resizeInputs()
			m.refreshTable()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case peopleLoadedMsg:
		if m.Quitting || msg.id != m.fetchID {
			m.logger.Debug("Ignoring stale people result", "id", msg.id)
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Error("Failed to load people", "error", msg.err)
			m.loadErr = msg.err
			return m, nil
		}
		m.logger.Info("Loaded people", "count", len(msg.people))
		m.all = msg.people
		m.index = people.NewIndex(msg.people)
		m.refreshTable()
		return m, nil

	case bookmarksLoadedMsg:
		if msg.err != nil {
			m.SetStatus(fmt.Sprintf("Failed to load bookmarks: %v", msg.err), statusDuration)
			m.viewMode = peopleViewBrowse
			return m, nil
		}
		m.bookmarks = msg.bookmarks
		if m.bookmarkCursor >= len(m.bookmarks) {
			m.bookmarkCursor = max(len(m.bookmarks)-1, 0)
		}
		return m, nil

	case bookmarkSavedMsg:
		if msg.err != nil {
			m.SetStatus(fmt.Sprintf("Bookmark not saved: %v", msg.err), statusDuration)
		} else {
			m.SetStatus(fmt.Sprintf("Bookmarked %q", msg.bookmark.Name), statusDuration)
		}
		return m, nil

	case bookmarkDeletedMsg:
		if msg.err != nil {
			m.SetStatus(fmt.Sprintf("Delete error: %v", msg.err), statusDuration)
			return m, nil
		}
		m.SetStatus(fmt.Sprintf("Deleted bookmark %q", msg.name), statusDuration)
		return m, m.loadBookmarks()

	case tea.KeyMsg:
		m.ClearExpiredStatus()
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m PeopleModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case peopleViewSearch:
		return m.handleSearchKeys(msg)
	case peopleViewGoto:
		return m.handleGotoKeys(msg)
	case peopleViewBookmarkName:
		return m.handleBookmarkNameKeys(msg)
	case peopleViewBookmarks:
		return m.handleBookmarksKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles keys shared by every page, then people page keys
func (m PeopleModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if quit, cmd := HandleQuitKeysNoEsc(msg.String()); quit {
		return m.quit(cmd)
	}

	loc := m.Location()

	switch msg.String() {
	case "h":
		return m.navigate(query.Location{Path: query.HomePath})

	case "p":
		// The People tab keeps the query only when already on the people page
		if loc.Page() == query.PagePeople {
			return m.navigate(loc.WithSlug(""))
		}
		return m.navigate(query.ResetLocation())

	case "[":
		if m.history.Back() {
			return m, m.applyLocation()
		}
		return m, nil

	case "]":
		if m.history.Forward() {
			return m, m.applyLocation()
		}
		return m, nil

	case "g":
		m.viewMode = peopleViewGoto
		m.gotoInput.SetValue(loc.String())
		m.gotoInput.CursorEnd()
		m.gotoInput.Focus()
		return m, textinput.Blink

	case "B":
		if m.store == nil {
			m.SetStatus("Bookmarks need a database", statusDuration)
			return m, nil
		}
		m.viewMode = peopleViewBookmarks
		m.bookmarkCursor = 0
		return m, m.loadBookmarks()

	case "ctrl+b":
		if m.store == nil {
			m.SetStatus("Bookmarks need a database", statusDuration)
			return m, nil
		}
		m.viewMode = peopleViewBookmarkName
		m.nameInput.SetValue("")
		m.nameInput.Placeholder = loc.String()
		m.nameInput.Focus()
		return m, textinput.Blink
	}

	if loc.Page() != query.PagePeople {
		return m, nil
	}
	return m.handlePeopleKeys(msg, loc)
}

func (m PeopleModel) handlePeopleKeys(msg tea.KeyMsg, loc query.Location) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Sort headers and filters only exist once the list is on screen
	ready := m.ready()

	switch key {
	case "r":
		return m.navigate(query.ResetLocation())

	case "a", "m", "f":
		if !ready {
			return m, nil
		}
		sex := map[string]models.Sex{"a": "", "m": models.SexMale, "f": models.SexFemale}[key]
		return m.navigate(loc.WithQuery(query.SexLink(loc.Query, sex)))

	case "6", "7", "8", "9", "0":
		if !ready {
			return m, nil
		}
		for i, k := range centuryKeys {
			if k == key {
				return m.navigate(loc.WithQuery(query.CenturyToggle(loc.Query, query.Centuries[i])))
			}
		}
		return m, nil

	case "c":
		if !ready {
			return m, nil
		}
		return m.navigate(loc.WithQuery(query.CenturiesAll(loc.Query)))

	case "n", "s", "b", "d":
		if !ready {
			return m, nil
		}
		field := map[string]query.Field{
			"n": query.FieldName,
			"s": query.FieldSex,
			"b": query.FieldBorn,
			"d": query.FieldDied,
		}[key]
		return m.navigate(loc.WithQuery(query.SortLink(loc.Query, field)))

	case "/":
		if !ready {
			return m, nil
		}
		m.viewMode = peopleViewSearch
		m.searchPushed = false
		m.searchInput.SetValue(loc.State().Query)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter":
		if row, ok := m.cursorRow(); ok {
			return m.navigate(loc.WithSlug(row.Person.Slug))
		}
		return m, nil

	case "esc":
		if loc.Slug() != "" {
			return m.navigate(loc.WithSlug(""))
		}
		return m, nil

	case "M", "F":
		row, ok := m.cursorRow()
		if !ok {
			return m, nil
		}
		parent, label := row.Mother, "Mother"
		if key == "F" {
			parent, label = row.Father, "Father"
		}
		switch {
		case parent.Absent():
			m.SetStatus(fmt.Sprintf("%s of %s is unknown", label, row.Person.Name), statusDuration)
			return m, nil
		case !parent.Linked():
			m.SetStatus(fmt.Sprintf("%s %s is not in the list", parent.Name, strings.ToLower(label)), statusDuration)
			return m, nil
		}
		return m.navigate(loc.WithSlug(parent.Slug))

	case "e":
		if !m.loaded() {
			return m, nil
		}
		filename := filepath.Join(m.exportDir, ExportFilename(time.Now()))
		content := GeneratePeopleMarkdown(loc, m.rows, len(m.all), time.Now())
		if err := ExportPeopleMarkdown(filename, content); err != nil {
			m.logger.Error("Export failed", "file", filename, "error", err)
			m.SetStatus(fmt.Sprintf("Export error: %v", err), statusDuration)
		} else {
			m.SetStatus(fmt.Sprintf("Exported %d people to %s", len(m.rows), filename), statusDuration)
		}
		return m, nil
	}

	// Everything else moves the table cursor
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PeopleModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.viewMode = peopleViewBrowse
		m.searchInput.Blur()
		return m, nil
	case "ctrl+c":
		return m.quit(tea.Quit)
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if after == before {
		return m, cmd
	}

	// Every keystroke is committed to the location
	loc := m.Location()
	next := loc.WithQuery(query.QueryLink(loc.Query, after))
	if m.searchPushed {
		m.history.Replace(next)
	} else {
		m.searchPushed = m.history.Push(next)
	}
	return m, tea.Batch(cmd, m.applyLocation())
}

func (m PeopleModel) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = peopleViewBrowse
		m.gotoInput.Blur()
		return m, nil

	case "enter":
		m.viewMode = peopleViewBrowse
		m.gotoInput.Blur()
		loc, err := query.ParseLocation(sanitizeInput(m.gotoInput.Value()))
		if err != nil {
			m.SetStatus(err.Error(), statusDuration)
			return m, nil
		}
		return m.navigate(loc)

	case "ctrl+c":
		return m.quit(tea.Quit)
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m PeopleModel) handleBookmarkNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = peopleViewBrowse
		m.nameInput.Blur()
		return m, nil

	case "enter":
		m.viewMode = peopleViewBrowse
		m.nameInput.Blur()
		name := strings.TrimSpace(sanitizeInput(m.nameInput.Value()))
		return m, m.saveBookmark(name, m.Location().String())

	case "ctrl+c":
		return m.quit(tea.Quit)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m PeopleModel) handleBookmarksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc", "B":
		m.viewMode = peopleViewBrowse
		return m, nil

	case "q", "ctrl+c":
		return m.quit(tea.Quit)

	case "enter":
		if m.bookmarkCursor < len(m.bookmarks) {
			b := m.bookmarks[m.bookmarkCursor]
			loc, err := query.ParseLocation(b.Location)
			if err != nil {
				m.SetStatus(err.Error(), statusDuration)
				return m, nil
			}
			m.viewMode = peopleViewBrowse
			return m.navigate(loc)
		}
		return m, nil

	case "x", "delete":
		if m.bookmarkCursor < len(m.bookmarks) {
			return m, m.deleteBookmark(m.bookmarks[m.bookmarkCursor])
		}
		return m, nil
	}

	m.bookmarkCursor = HandleNavigationKeys(key, m.bookmarkCursor, len(m.bookmarks))
	return m, nil
}

// navigate pushes loc onto the history and re-derives the view
func (m PeopleModel) navigate(loc query.Location) (tea.Model, tea.Cmd) {
	if !m.history.Push(loc) {
		return m, nil
	}
	m.logger.Debug("Navigate", "location", loc.String())
	return m, m.applyLocation()
}

// applyLocation re-derives everything from the current location.
// It starts the one fetch of the session the first time the people page is shown.
func (m *PeopleModel) applyLocation() tea.Cmd {
	var cmd tea.Cmd
	if m.Location().Page() == query.PagePeople && !m.fetchStarted {
		m.startFetch()
		cmd = m.fetchPeople(m.fetchID)
	}
	m.refreshTable()
	return cmd
}

func (m *PeopleModel) startFetch() {
	m.fetchStarted = true
	m.fetchID++
	m.loading = true
	m.loadErr = nil
}

func (m PeopleModel) quit(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.cancel()
	if m.store != nil {
		if err := m.store.SetLastLocation(m.Location().String()); err != nil {
			m.logger.Error("Failed to save last location", "error", err)
		}
	}
	return m, cmd
}

// loaded reports whether the list arrived without error
func (m PeopleModel) loaded() bool {
	return m.fetchStarted && !m.loading && m.loadErr == nil
}

// ready reports whether filters and sort headers are usable
func (m PeopleModel) ready() bool {
	return m.loaded() && len(m.all) > 0
}

func (m PeopleModel) cursorRow() (PersonRow, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return PersonRow{}, false
	}
	return m.rows[cursor], true
}

// selectedPerson resolves the path slug against the full list
func (m PeopleModel) selectedPerson() (models.Person, bool) {
	return m.index.BySlug(m.Location().Slug())
}

// =============================================================================
// Table
// =============================================================================

const detailLines = 5

func (m *PeopleModel) tableHeight() int {
	h := m.Layout.TableHeight
	if _, ok := m.selectedPerson(); ok {
		h -= detailLines
	}
	return max(h, MinTableHeight)
}

// refreshTable rebuilds rows, headers and cursor from the current location
func (m *PeopleModel) refreshTable() {
	loc := m.Location()
	cursor := m.table.Cursor()

	if m.loaded() {
		m.rows = BuildRows(people.Apply(m.all, loc.State()), m.index)
	} else {
		m.rows = nil
	}

	m.table.SetRows(nil)
	m.table.SetColumns(CalculateColumns(PeopleColumns(loc.Query), m.Layout.TableWidth))

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row(r.Cells())
	}
	m.table.SetRows(rows)
	m.table.SetHeight(m.tableHeight())

	if slug := loc.Slug(); slug != "" {
		for i, r := range m.rows {
			if r.Person.Slug == slug {
				cursor = i
				break
			}
		}
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	m.table.SetCursor(max(cursor, 0))
}

func (m *PeopleModel) resizeInputs() {
	m.searchInput.Width = m.Layout.InnerWidth - 20
	m.gotoInput.Width = m.Layout.InnerWidth - 20
	m.nameInput.Width = m.Layout.InnerWidth - 20
}

// rowStyle marks the selected person and female names
func (m PeopleModel) rowStyle(row int) (lipgloss.Style, bool) {
	r := m.rows[row]
	if slug := m.Location().Slug(); slug != "" && r.Person.Slug == slug {
		return MarkedStyle, true
	}
	if r.IsFemale() {
		return FemaleStyle, true
	}
	return lipgloss.Style{}, false
}

// =============================================================================
// View
// =============================================================================

// View implements tea.Model
func (m PeopleModel) View() string {
	if m.Quitting {
		return ""
	}

	loc := m.Location()

	active := -1
	title := "Page not found"
	switch loc.Page() {
	case query.PageHome:
		active, title = tabHome, "Home Page"
	case query.PagePeople:
		active, title = tabPeople, "People Page"
	}

	builder := NewPageView(m.Layout).
		Title(" " + title).
		Navbar(navTabs, active).
		Location(loc.String()).
		Divider()

	switch m.viewMode {
	case peopleViewBookmarks:
		builder.CustomContent(m.renderBookmarks())
	default:
		switch loc.Page() {
		case query.PageHome:
			builder.CustomContent(m.renderHome())
		case query.PagePeople:
			m.renderPeople(builder, loc)
		default:
			builder.Error(" Page not found")
			builder.DimText(" Press h for home or p for people")
		}
	}

	switch m.viewMode {
	case peopleViewGoto:
		builder.CustomContent("\n" + AccentStyle.Render(" Go to: ") + m.gotoInput.View())
	case peopleViewBookmarkName:
		builder.CustomContent("\n" + AccentStyle.Render(" Bookmark name: ") + m.nameInput.View())
	}

	return builder.Status(m.StatusMsg).Help(m.getHelpText()).Build()
}

func (m PeopleModel) renderHome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(CenterText(AccentStyle.Render("Genealogy browser"), m.Layout.InnerWidth))
	b.WriteString("\n\n")
	b.WriteString(CenterText(NormalStyle.Render("Press p to open the people table"), m.Layout.InnerWidth))
	b.WriteString("\n")
	b.WriteString(CenterText(DimStyle.Render("Press g to type a location, B to open a bookmark"), m.Layout.InnerWidth))
	return b.String()
}

func (m PeopleModel) renderPeople(builder *PageViewBuilder, loc query.Location) {
	switch {
	case m.loading:
		builder.CustomContent(" " + m.spinner.View() + " " + NormalStyle.Render("Loading people..."))
		return
	case m.loadErr != nil:
		builder.Error(" " + MsgLoadError)
		return
	case !m.loaded():
		return
	}

	if len(m.all) > 0 {
		builder.CustomContent(m.renderFilters(loc.State()))
	}

	if len(m.rows) == 0 {
		builder.Text(" " + EmptyMessage(len(m.all)))
	} else {
		builder.Table(m.table, m.rowStyle)
		builder.DimText(fmt.Sprintf(" %d of %d people", len(m.rows), len(m.all)))
	}

	if p, ok := m.selectedPerson(); ok {
		builder.CustomContent(m.renderDetail(p))
	}
}

func chip(label string, active bool) string {
	if active {
		return ChipActiveStyle.Render(label)
	}
	return ChipInactiveStyle.Render(label)
}

func (m PeopleModel) renderFilters(state query.State) string {
	var b strings.Builder

	b.WriteString(DimStyle.Render(" Sex "))
	b.WriteString(chip("All a", state.Sex == ""))
	b.WriteString(chip("Male m", state.Sex == models.SexMale))
	b.WriteString(chip("Female f", state.Sex == models.SexFemale))

	b.WriteString(DimStyle.Render("   Centuries "))
	for i, c := range query.Centuries {
		b.WriteString(chip(fmt.Sprintf("%d %s", c, centuryKeys[i]), state.HasCentury(c)))
	}
	b.WriteString(chip("All c", len(state.Centuries) == 0))
	b.WriteString("\n")

	b.WriteString(DimStyle.Render(" Search "))
	switch {
	case m.viewMode == peopleViewSearch:
		b.WriteString(m.searchInput.View())
	case state.Query != "":
		b.WriteString(AccentStyle.Render(state.Query))
	default:
		b.WriteString(DimStyle.Render("press / to search"))
	}

	return b.String()
}

func (m PeopleModel) renderDetail(p models.Person) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render(fmt.Sprintf(" %s (%s)", p.Name, p.Lifespan())))
	b.WriteString("\n")

	row := BuildRows([]models.Person{p}, m.index)[0]
	b.WriteString(NormalStyle.Render(fmt.Sprintf(" Mother: %s   Father: %s", parentText(row.Mother), parentText(row.Father))))
	b.WriteString("\n")

	children := m.index.Children(p)
	if len(children) == 0 {
		b.WriteString(DimStyle.Render(" No children in the list"))
	} else {
		names := make([]string, len(children))
		for i, c := range children {
			names[i] = c.Name
		}
		b.WriteString(RenderListItem("Children: "+truncateToWidth(strings.Join(names, ", "), m.Layout.InnerWidth-14), false, m.Layout.InnerWidth))
	}
	return b.String()
}

func parentText(c ParentCell) string {
	if c.Linked() {
		return LinkStyle.Render(c.Text())
	}
	return c.Text()
}

func (m PeopleModel) renderBookmarks() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(" Bookmarks"))
	b.WriteString("\n\n")

	if len(m.bookmarks) == 0 {
		b.WriteString(HintStyle.Render(" No bookmarks yet. Press ctrl+b on any page to save one."))
		return b.String()
	}

	cols := CalculateColumns(BookmarkColumns(), m.Layout.TableWidth)
	for i, bm := range m.bookmarks {
		line := padToWidth(truncateToWidth(bm.Name, cols[0].Width), cols[0].Width) + "  " +
			padToWidth(truncateToWidth(bm.Location, cols[1].Width), cols[1].Width) + "  " +
			bm.CreatedAt.Local().Format("2006-01-02 15:04")
		if i == m.bookmarkCursor {
			b.WriteString(RenderSelectedWidth("> "+line, m.Layout.InnerWidth))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PeopleModel) getHelpText() string {
	switch m.viewMode {
	case peopleViewSearch:
		return "type to filter | Enter/Esc: done"
	case peopleViewGoto:
		return "Enter: go | Esc: cancel"
	case peopleViewBookmarkName:
		return "Enter: save (empty = location) | Esc: cancel"
	case peopleViewBookmarks:
		return "Enter: open | x: delete | j/k: navigate | Esc: back"
	}

	if m.Location().Page() != query.PagePeople || !m.ready() {
		return "h/p: pages | [/]: back/fwd | g: go to | ctrl+b: bookmark | B: bookmarks | q: quit"
	}
	help := "a/m/f sex | 6-0 century | / search | n/s/b/d sort | enter select | M/F parent | r reset | e export | [/] | q"
	if m.Location().State().HasFilters() {
		help = "filters on | " + help
	}
	return help
}

// =============================================================================
// Commands
// =============================================================================

func (m PeopleModel) fetchPeople(id int) tea.Cmd {
	fetcher, ctx, logger := m.fetcher, m.ctx, m.logger
	return func() tea.Msg {
		if fetcher == nil {
			return peopleLoadedMsg{id: id, err: fmt.Errorf("no people source configured")}
		}
		logger.Debug("Fetching people", "id", id)
		list, err := fetcher.FetchPeople(ctx)
		return peopleLoadedMsg{id: id, people: list, err: err}
	}
}

func (m PeopleModel) loadBookmarks() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		bookmarks, err := store.GetBookmarks()
		return bookmarksLoadedMsg{bookmarks: bookmarks, err: err}
	}
}

func (m PeopleModel) saveBookmark(name, location string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		b, err := store.AddBookmark(name, location)
		return bookmarkSavedMsg{bookmark: b, err: err}
	}
}

func (m PeopleModel) deleteBookmark(b models.Bookmark) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return bookmarkDeletedMsg{name: b.Name, err: store.DeleteBookmark(b.ID)}
	}
}

// =============================================================================
// Public API
// =============================================================================

// RunPeople starts the people browser and returns the location it ended on
func RunPeople(opts PeopleOptions) (query.Location, error) {
	model := NewPeopleModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return query.Location{}, err
	}

	m, ok := finalModel.(PeopleModel)
	if !ok {
		return query.Location{}, nil
	}
	return m.Location(), nil
}
