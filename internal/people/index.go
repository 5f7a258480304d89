package people

import "github.com/thesavant42/peoplesome-ng/internal/models"

// Index resolves parent names and slugs against the full, unfiltered record list.
// Build it once per fetched list; it is read-only afterwards.
type Index struct {
	byName   map[string]int
	bySlug   map[string]int
	children map[string][]int // parent name -> child positions in list order
	list     []models.Person
}

// NewIndex builds the lookup tables for list.
// Names are not unique: the first record with a given name wins.
func NewIndex(list []models.Person) *Index {
	idx := &Index{
		byName:   make(map[string]int, len(list)),
		bySlug:   make(map[string]int, len(list)),
		children: make(map[string][]int),
		list:     list,
	}

	for i, p := range list {
		if _, ok := idx.byName[p.Name]; !ok {
			idx.byName[p.Name] = i
		}
		if _, ok := idx.bySlug[p.Slug]; !ok {
			idx.bySlug[p.Slug] = i
		}
		if p.HasMother() {
			idx.children[p.MotherName] = append(idx.children[p.MotherName], i)
		}
		if p.HasFather() && p.FatherName != p.MotherName {
			idx.children[p.FatherName] = append(idx.children[p.FatherName], i)
		}
	}

	return idx
}

// Parent looks up a parent by exact name. ok is false for empty names and misses.
func (idx *Index) Parent(name string) (models.Person, bool) {
	if idx == nil || name == "" {
		return models.Person{}, false
	}
	i, ok := idx.byName[name]
	if !ok {
		return models.Person{}, false
	}
	return idx.list[i], true
}

// Mother resolves p's mother
func (idx *Index) Mother(p models.Person) (models.Person, bool) {
	return idx.Parent(p.MotherName)
}

// Father resolves p's father
func (idx *Index) Father(p models.Person) (models.Person, bool) {
	return idx.Parent(p.FatherName)
}

// BySlug looks up a record by slug
func (idx *Index) BySlug(slug string) (models.Person, bool) {
	if idx == nil || slug == "" {
		return models.Person{}, false
	}
	i, ok := idx.bySlug[slug]
	if !ok {
		return models.Person{}, false
	}
	return idx.list[i], true
}

// Children returns everyone naming p as mother or father, in list order.
// Only p's name is matched, so children of a namesake are included too.
func (idx *Index) Children(p models.Person) []models.Person {
	if idx == nil {
		return nil
	}
	positions := idx.children[p.Name]
	result := make([]models.Person, 0, len(positions))
	for _, i := range positions {
		result = append(result, idx.list[i])
	}
	return result
}

// Len returns the number of indexed records
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.list)
}

// SlugCount returns the number of distinct slugs
func (idx *Index) SlugCount() int {
	if idx == nil {
		return 0
	}
	return len(idx.bySlug)
}
