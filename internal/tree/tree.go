package tree

import (
	"sort"

	"github.com/gedsite-dev/gedsite/internal/gedcom"
)

// Tree provides relationship lookups over a parsed document. Every
// consumer that follows a cross-reference goes through these helpers, so
// a dangling ID degrades to "absent" at one place instead of being
// re-checked at every call site.
type Tree struct {
	doc *gedcom.Document
}

// New wraps a parsed document.
func New(doc *gedcom.Document) *Tree {
	return &Tree{doc: doc}
}

// Individual looks up a person by record ID.
func (t *Tree) Individual(id string) (*gedcom.Individual, bool) {
	in, ok := t.doc.Individuals[id]
	return in, ok
}

// Family looks up a family by record ID.
func (t *Tree) Family(id string) (*gedcom.Family, bool) {
	fam, ok := t.doc.Families[id]
	return fam, ok
}

// IndividualIDs returns every person ID in sorted order.
func (t *Tree) IndividualIDs() []string {
	ids := make([]string, 0, len(t.doc.Individuals))
	for id := range t.doc.Individuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FamilyIDs returns every family ID in sorted order.
func (t *Tree) FamilyIDs() []string {
	ids := make([]string, 0, len(t.doc.Families))
	for id := range t.doc.Families {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IndividualCount reports how many people were parsed.
func (t *Tree) IndividualCount() int {
	return len(t.doc.Individuals)
}

// FamilyCount reports how many families were parsed.
func (t *Tree) FamilyCount() int {
	return len(t.doc.Families)
}

// ChildrenOf resolves a family's children in record order, skipping IDs
// that do not resolve.
func (t *Tree) ChildrenOf(fam *gedcom.Family) []*gedcom.Individual {
	children := make([]*gedcom.Individual, 0, len(fam.Children))
	for _, id := range fam.Children {
		if child, ok := t.Individual(id); ok {
			children = append(children, child)
		}
	}
	return children
}

// Spouse returns the other spouse of fam relative to personID. It
// reports false when the person is not recorded as a spouse of fam, or
// when the other side is empty or dangling.
func (t *Tree) Spouse(fam *gedcom.Family, personID string) (*gedcom.Individual, bool) {
	spouseID := ""
	if fam.Husband == personID {
		spouseID = fam.Wife
	} else if fam.Wife == personID {
		spouseID = fam.Husband
	}
	if spouseID == "" {
		return nil, false
	}
	return t.Individual(spouseID)
}
