package ui

import (
	"strconv"

	"github.com/thesavant42/peoplesome-ng/internal/models"
	"github.com/thesavant42/peoplesome-ng/internal/people"
)

// ParentCell is how a mother or father column is shown.
type ParentCell struct {
	Name string
	Slug string // set when the parent resolves to a person in the list
}

// Absent reports whether the person has no recorded parent
func (c ParentCell) Absent() bool { return c.Name == "" }

// Linked reports whether the parent resolves to a known person
func (c ParentCell) Linked() bool { return c.Slug != "" }

// Text is the plain table text: "→ Name" for links, the raw name otherwise, "-" when absent
func (c ParentCell) Text() string {
	switch {
	case c.Absent():
		return "-"
	case c.Linked():
		return "→ " + c.Name
	default:
		return c.Name
	}
}

// PersonRow is one displayed row, shared by the TUI, CLI report and markdown export.
type PersonRow struct {
	Person models.Person
	Mother ParentCell
	Father ParentCell
}

// BuildRows resolves parent links for a derived list against the full-list index
func BuildRows(list []models.Person, idx *people.Index) []PersonRow {
	rows := make([]PersonRow, len(list))
	for i, p := range list {
		rows[i] = PersonRow{
			Person: p,
			Mother: resolveParent(idx, p.MotherName),
			Father: resolveParent(idx, p.FatherName),
		}
	}
	return rows
}

func resolveParent(idx *people.Index, name string) ParentCell {
	cell := ParentCell{Name: name}
	if name == "" {
		return cell
	}
	if parent, ok := idx.Parent(name); ok {
		cell.Slug = parent.Slug
	}
	return cell
}

// Cells returns the table cells in column order
func (r PersonRow) Cells() []string {
	return []string{
		r.Person.Name,
		string(r.Person.Sex),
		strconv.Itoa(r.Person.Born),
		strconv.Itoa(r.Person.Died),
		r.Mother.Text(),
		r.Father.Text(),
	}
}

// IsFemale reports whether the row's name is drawn with the female marker
func (r PersonRow) IsFemale() bool {
	return r.Person.Sex == models.SexFemale
}

// EmptyMessage returns the message shown in place of an empty table.
// total is the size of the unfiltered list.
func EmptyMessage(total int) string {
	if total == 0 {
		return MsgNoPeople
	}
	return MsgNoMatches
}
