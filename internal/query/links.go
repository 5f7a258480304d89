package query

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

// Params describes query updates for SearchWith.
// A nil value deletes the key; any other value replaces all values of the key.
type Params map[string][]string

// SearchWith returns the query string for values with params applied.
// Keys not named in params are carried over untouched. values is not modified.
func SearchWith(values url.Values, params Params) string {
	next := cloneValues(values)
	for key, vals := range params {
		if vals == nil {
			next.Del(key)
			continue
		}
		next[key] = slices.Clone(vals)
	}
	return next.Encode()
}

// SexLink returns the query string after choosing a sex filter.
// An empty sex means All and removes the parameter.
func SexLink(values url.Values, sex models.Sex) string {
	if sex == "" {
		return SearchWith(values, Params{ParamSex: nil})
	}
	return SearchWith(values, Params{ParamSex: {string(sex)}})
}

// CenturyToggle returns the query string with century added if it was absent
// or removed if it was present. Values are compared as numbers, the way Parse
// reads them, so "019" counts as 19. Existing duplicates are collapsed.
func CenturyToggle(values url.Values, century int) string {
	var next []string
	seen := map[string]bool{}
	found := false
	for _, raw := range values[ParamCenturies] {
		key := raw
		if c, err := strconv.Atoi(raw); err == nil {
			if c == century {
				found = true
				continue
			}
			key = strconv.Itoa(c)
		}
		if !seen[key] {
			seen[key] = true
			next = append(next, raw)
		}
	}
	if !found {
		next = append(next, strconv.Itoa(century))
	}

	if len(next) == 0 {
		return SearchWith(values, Params{ParamCenturies: nil})
	}
	return SearchWith(values, Params{ParamCenturies: next})
}

// CenturiesAll returns the query string with every century value removed
func CenturiesAll(values url.Values) string {
	return SearchWith(values, Params{ParamCenturies: nil})
}

// QueryLink returns the query string for the current text input.
// Empty text removes the parameter.
func QueryLink(values url.Values, text string) string {
	if text == "" {
		return SearchWith(values, Params{ParamQuery: nil})
	}
	return SearchWith(values, Params{ParamQuery: {text}})
}

// SortLink returns the query string after activating the header for field.
//
//	unset -> ascending  (sort=field, no order)
//	asc   -> descending (order=desc)
//	desc  -> unset      (sort and order removed)
//
// Activating a different field than the current one starts at ascending.
func SortLink(values url.Values, field Field) string {
	state := Parse(values)

	switch {
	case state.Sort != field:
		return SearchWith(values, Params{ParamSort: {string(field)}, ParamOrder: nil})
	case state.Order != OrderDesc:
		return SearchWith(values, Params{ParamSort: {string(field)}, ParamOrder: {string(OrderDesc)}})
	default:
		return SearchWith(values, Params{ParamSort: nil, ParamOrder: nil})
	}
}

// SortIndicator is the header icon state for a column
type SortIndicator int

const (
	SortOff SortIndicator = iota
	SortUp
	SortDown
)

// SortIcon reports how the header for field should be drawn
func SortIcon(values url.Values, field Field) SortIndicator {
	state := Parse(values)
	switch {
	case state.Sort != field:
		return SortOff
	case state.Order == OrderDesc:
		return SortDown
	default:
		return SortUp
	}
}

func cloneValues(values url.Values) url.Values {
	next := make(url.Values, len(values))
	for k, v := range values {
		next[k] = slices.Clone(v)
	}
	return next
}
