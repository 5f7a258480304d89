// Package people derives the displayed list from the full record list and query state.
//
// Everything here is pure: inputs are never modified and the same inputs always
// produce the same output.
package people

import (
	"slices"
	"strings"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

// Filter returns the records matching every active filter in state.
// The result keeps the input order.
func Filter(list []models.Person, state query.State) []models.Person {
	needle := strings.ToLower(state.Query)

	result := make([]models.Person, 0, len(list))
	for _, p := range list {
		if state.Sex != "" && p.Sex != state.Sex {
			continue
		}
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		if len(state.Centuries) > 0 && !slices.Contains(state.Centuries, p.Century()) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesText checks the lowercased needle against name, mother and father
func matchesText(p models.Person, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if p.HasMother() && strings.Contains(strings.ToLower(p.MotherName), needle) {
		return true
	}
	return p.HasFather() && strings.Contains(strings.ToLower(p.FatherName), needle)
}

// Apply filters then sorts, producing the list the table shows
func Apply(list []models.Person, state query.State) []models.Person {
	return Sort(Filter(list, state), state.Sort, state.Order)
}
