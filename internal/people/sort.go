package people

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/query"
)

// NameLocale is the collation used for the name column
var NameLocale = language.English

// Sort returns a sorted copy of list. FieldNone returns an unchanged copy.
// Sorting is stable in both directions: records with equal keys keep their
// relative input order.
func Sort(list []models.Person, field query.Field, order query.Order) []models.Person {
	sorted := slices.Clone(list)

	compare := comparator(field)
	if compare == nil {
		return sorted
	}

	if order == query.OrderDesc {
		asc := compare
		compare = func(a, b models.Person) int { return asc(b, a) }
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

func comparator(field query.Field) func(a, b models.Person) int {
	switch field {
	case query.FieldName:
		// A Collator keeps internal buffers, so each sort gets its own
		c := collate.New(NameLocale)
		return func(a, b models.Person) int {
			return c.CompareString(a.Name, b.Name)
		}
	case query.FieldSex:
		return func(a, b models.Person) int {
			return strings.Compare(string(a.Sex), string(b.Sex))
		}
	case query.FieldBorn:
		return func(a, b models.Person) int {
			return cmp.Compare(a.Born, b.Born)
		}
	case query.FieldDied:
		return func(a, b models.Person) int {
			return cmp.Compare(a.Died, b.Died)
		}
	}
	return nil
}
