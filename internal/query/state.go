// Package query maps the location query string to typed filter/sort state and back.
//
// The query string is the only place filter and sort state lives. Parse is total:
// missing or malformed parameters are treated as unset, never as errors.
package query

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/thesavant42/peoplesome-ng/internal/models"
)

// Query parameter names
const (
	ParamSex       = "sex"
	ParamQuery     = "query"
	ParamCenturies = "centuries"
	ParamSort      = "sort"
	ParamOrder     = "order"
)

// Field is a sortable table column
type Field string

const (
	FieldNone Field = ""
	FieldName Field = "name"
	FieldSex  Field = "sex"
	FieldBorn Field = "born"
	FieldDied Field = "died"
)

// Fields lists the sortable columns in table order
var Fields = []Field{FieldName, FieldSex, FieldBorn, FieldDied}

// Order is the sort direction. The zero value is ascending.
type Order string

const (
	OrderAsc  Order = ""
	OrderDesc Order = "desc"
)

// Centuries lists the selectable century filter values
var Centuries = []int{16, 17, 18, 19, 20}

// State is the typed view of the query string
type State struct {
	Sex       models.Sex // "" = all
	Query     string     // free text, "" = no text filter
	Centuries []int      // selected centuries in query-string order, no duplicates
	Sort      Field
	Order     Order
}

// Parse builds a State from query values. Unknown values are dropped.
func Parse(values url.Values) State {
	var s State

	switch models.Sex(values.Get(ParamSex)) {
	case models.SexMale:
		s.Sex = models.SexMale
	case models.SexFemale:
		s.Sex = models.SexFemale
	}

	s.Query = values.Get(ParamQuery)

	for _, raw := range values[ParamCenturies] {
		c, err := strconv.Atoi(raw)
		if err != nil || !IsCentury(c) {
			continue
		}
		if !slices.Contains(s.Centuries, c) {
			s.Centuries = append(s.Centuries, c)
		}
	}

	s.Sort = ParseField(values.Get(ParamSort))

	// order only means something while a sort field is active
	if s.Sort != FieldNone && values.Get(ParamOrder) == string(OrderDesc) {
		s.Order = OrderDesc
	}

	return s
}

// ParseField returns the Field named by s, or FieldNone if s is not a sortable column
func ParseField(s string) Field {
	f := Field(s)
	if slices.Contains(Fields, f) {
		return f
	}
	return FieldNone
}

// IsCentury returns true if c is one of the selectable centuries
func IsCentury(c int) bool {
	return slices.Contains(Centuries, c)
}

// HasCentury returns true if century c is selected
func (s State) HasCentury(c int) bool {
	return slices.Contains(s.Centuries, c)
}

// HasFilters returns true if any filter dimension is set
func (s State) HasFilters() bool {
	return s.Sex != "" || s.Query != "" || len(s.Centuries) > 0
}

// Values encodes the state back to query values
func (s State) Values() url.Values {
	values := url.Values{}
	if s.Sex != "" {
		values.Set(ParamSex, string(s.Sex))
	}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	for _, c := range s.Centuries {
		values.Add(ParamCenturies, strconv.Itoa(c))
	}
	if s.Sort != FieldNone {
		values.Set(ParamSort, string(s.Sort))
		if s.Order == OrderDesc {
			values.Set(ParamOrder, string(OrderDesc))
		}
	}
	return values
}

// Encode returns the canonical query string for the state (keys sorted)
func (s State) Encode() string {
	return s.Values().Encode()
}
