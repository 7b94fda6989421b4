package tree

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gedsite-dev/gedsite/internal/gedcom"
	"github.com/gedsite-dev/gedsite/internal/nameutil"
)

// FindIndividual resolves a free-text name query to a single person.
// Matching is case- and punctuation-insensitive; an exact match on the
// normalized display name beats a prefix match, which beats a substring
// match. A tie at the winning rank is reported as ambiguous rather than
// guessed at.
func (t *Tree) FindIndividual(query string) (*gedcom.Individual, error) {
	normalized := nameutil.Normalize(query)
	if normalized == "" {
		return nil, errors.New("empty name provided")
	}

	type match struct {
		person *gedcom.Individual
		rank   int
		length int
	}
	matches := make([]match, 0)
	for _, id := range t.IndividualIDs() {
		person := t.doc.Individuals[id]
		display := nameutil.Normalize(person.DisplayName())
		if !strings.Contains(display, normalized) {
			continue
		}
		rank := 2
		switch {
		case display == normalized:
			rank = 0
		case strings.HasPrefix(display, normalized):
			rank = 1
		}
		matches = append(matches, match{person: person, rank: rank, length: len(display)})
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("could not find an individual matching %q", query)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].length < matches[j].length
	})
	if len(matches) > 1 && matches[0].rank == matches[1].rank {
		return nil, fmt.Errorf("multiple individuals match %q, use a more specific name or an ID", query)
	}
	return matches[0].person, nil
}

// FindFamilyBySpouses returns the first family, in sorted ID order, that
// records the two people as spouses in either orientation.
func (t *Tree) FindFamilyBySpouses(husbandID, wifeID string) (*gedcom.Family, bool) {
	for _, id := range t.FamilyIDs() {
		fam := t.doc.Families[id]
		if fam.Husband == husbandID && fam.Wife == wifeID {
			return fam, true
		}
		if fam.Husband == wifeID && fam.Wife == husbandID {
			return fam, true
		}
	}
	return nil, false
}

// RootSelection is the resolved base couple and their family.
type RootSelection struct {
	Family  *gedcom.Family
	Husband *gedcom.Individual
	Wife    *gedcom.Individual
}

// SelectRoot resolves the couple the generated site is rooted at. An
// explicit familyID wins and must name a family with both spouses
// present and resolvable. Otherwise the husband query is resolved first
// and his spouse families are filtered by the wife query; with no filter
// hit a sole candidate family is accepted as-is; failing that, both
// names are looked up independently and paired via FindFamilyBySpouses.
func (t *Tree) SelectRoot(familyID, husbandQuery, wifeQuery string) (*RootSelection, error) {
	if familyID != "" {
		fam, ok := t.Family(familyID)
		if !ok {
			return nil, fmt.Errorf("family ID %s not found", familyID)
		}
		if fam.Husband == "" || fam.Wife == "" {
			return nil, errors.New("base family must have both husband and wife defined")
		}
		husband, hok := t.Individual(fam.Husband)
		wife, wok := t.Individual(fam.Wife)
		if !hok || !wok {
			return nil, errors.New("base family references individuals that were not found")
		}
		return &RootSelection{Family: fam, Husband: husband, Wife: wife}, nil
	}

	husband, err := t.FindIndividual(husbandQuery)
	if err != nil {
		return nil, err
	}

	type pair struct {
		family *gedcom.Family
		spouse *gedcom.Individual
	}
	pairs := make([]pair, 0, len(husband.FamS))
	for _, famID := range husband.FamS {
		fam, ok := t.Family(famID)
		if !ok {
			continue
		}
		spouseID := fam.Wife
		if fam.Husband != husband.ID {
			spouseID = fam.Husband
		}
		if spouseID == "" {
			continue
		}
		spouse, ok := t.Individual(spouseID)
		if !ok {
			continue
		}
		pairs = append(pairs, pair{family: fam, spouse: spouse})
	}

	normalizedWife := nameutil.Normalize(wifeQuery)
	for _, p := range pairs {
		if normalizedWife != "" && !strings.Contains(nameutil.Normalize(p.spouse.DisplayName()), normalizedWife) {
			continue
		}
		return &RootSelection{Family: p.family, Husband: husband, Wife: p.spouse}, nil
	}

	if len(pairs) == 1 {
		return &RootSelection{Family: pairs[0].family, Husband: husband, Wife: pairs[0].spouse}, nil
	}

	wife, err := t.FindIndividual(wifeQuery)
	if err != nil {
		return nil, err
	}
	fam, ok := t.FindFamilyBySpouses(husband.ID, wife.ID)
	if !ok {
		return nil, errors.New("could not locate a family where the provided individuals are spouses, consider --base-family-id")
	}
	return &RootSelection{Family: fam, Husband: husband, Wife: wife}, nil
}
