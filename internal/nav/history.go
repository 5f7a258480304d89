// Package nav keeps back/forward navigation history over locations.
package nav

import "github.com/thesavant42/peoplesome-ng/internal/query"

// History is a browser-style navigation stack.
// Entries are stored as location strings so every parameter round-trips exactly.
type History struct {
	entries []string
	pos     int
}

// NewHistory starts a history at the given location
func NewHistory(start query.Location) *History {
	return &History{entries: []string{start.String()}}
}

// Current returns the location at the cursor
func (h *History) Current() query.Location {
	loc, err := query.ParseLocation(h.entries[h.pos])
	if err != nil {
		// Entries are produced by Location.String, which always parses
		return query.Location{Path: query.HomePath}
	}
	return loc
}

// Push navigates to loc. Forward entries are discarded.
// Pushing the current location again is a no-op and returns false.
func (h *History) Push(loc query.Location) bool {
	s := loc.String()
	if s == h.entries[h.pos] {
		return false
	}
	h.entries = append(h.entries[:h.pos+1], s)
	h.pos++
	return true
}

// Replace swaps the current entry without adding history.
// Used for keystroke-by-keystroke search input.
func (h *History) Replace(loc query.Location) {
	h.entries[h.pos] = loc.String()
}

// Back moves one entry back. Returns false at the start of history.
func (h *History) Back() bool {
	if !h.CanBack() {
		return false
	}
	h.pos--
	return true
}

// Forward moves one entry forward. Returns false at the end of history.
func (h *History) Forward() bool {
	if !h.CanForward() {
		return false
	}
	h.pos++
	return true
}

// CanBack returns true if Back would move
func (h *History) CanBack() bool {
	return h.pos > 0
}

// CanForward returns true if Forward would move
func (h *History) CanForward() bool {
	return h.pos < len(h.entries)-1
}
