package query

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Paths used by the people browser
const (
	HomePath   = "/"
	PeoplePath = "/people"
)

// ErrInvalidLocation is returned when a location string cannot be parsed
var ErrInvalidLocation = errors.New("invalid location")

// Page identifies which screen a location selects
type Page int

const (
	PageHome Page = iota
	PagePeople
	PageNotFound
)

// Location is a path plus query string, the terminal equivalent of the page URL.
// e.g. "/people/anna-1850?sex=f&centuries=19"
type Location struct {
	Path  string
	Query url.Values
}

// ParseLocation parses a location string. It accepts bare paths ("/people?sex=m"),
// paths without the leading slash ("people"), full URLs and hash-router URLs
// ("https://example.com/#/people?sex=m"). An empty string is the home page.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{Path: HomePath, Query: url.Values{}}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w %q: %v", ErrInvalidLocation, raw, err)
	}

	// Hash router: the real location lives in the fragment
	if strings.HasPrefix(u.Fragment, "/") {
		return ParseLocation(u.Fragment)
	}

	path := u.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		// Keep whatever pairs parsed; malformed pairs are treated as unset
		if values == nil {
			values = url.Values{}
		}
	}

	return Location{Path: path, Query: values}, nil
}

// ResetLocation is the people page with every parameter cleared
func ResetLocation() Location {
	return Location{Path: PeoplePath, Query: url.Values{}}
}

// String renders the location as path[?query]
func (l Location) String() string {
	path := l.Path
	if path == "" {
		path = HomePath
	}
	encoded := l.Query.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Page reports which screen the location selects
func (l Location) Page() Page {
	switch {
	case l.Path == "" || l.Path == HomePath:
		return PageHome
	case l.Path == PeoplePath:
		return PagePeople
	case strings.HasPrefix(l.Path, PeoplePath+"/"):
		rest := strings.TrimPrefix(l.Path, PeoplePath+"/")
		if rest != "" && !strings.Contains(rest, "/") {
			return PagePeople
		}
	}
	return PageNotFound
}

// Slug returns the selected person slug from /people/<slug>, or ""
func (l Location) Slug() string {
	if l.Page() != PagePeople {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(l.Path, PeoplePath), "/")
}

// State parses the filter/sort state from the location query
func (l Location) State() State {
	return Parse(l.Query)
}

// WithQuery returns a copy of the location with its query replaced by the
// encoded query string. Malformed pairs are dropped.
func (l Location) WithQuery(rawQuery string) Location {
	values, _ := url.ParseQuery(rawQuery)
	if values == nil {
		values = url.Values{}
	}
	return Location{Path: l.Path, Query: values}
}

// WithSlug returns the people location selecting slug, keeping the query.
// An empty slug clears the selection.
func (l Location) WithSlug(slug string) Location {
	path := PeoplePath
	if slug != "" {
		path += "/" + slug
	}
	return Location{Path: path, Query: cloneValues(l.Query)}
}
