package cli

import (
	"fmt"

	"github.com/gedsite-dev/gedsite/internal/fileutil"
	"github.com/gedsite-dev/gedsite/internal/gedcom"
	"github.com/gedsite-dev/gedsite/internal/tree"
	"github.com/spf13/cobra"
)

// RunCheck parses a GEDCOM file and reports record counts, dangling
// cross references, and birth dates the generator cannot order by.
func RunCheck(cmd *cobra.Command, args []string) error {
	gedcomPath := args[0]
	asJSON, err := OptionalBoolFlag(cmd, "json", false)
	if err != nil {
		return err
	}

	doc, err := gedcom.ParseFile(gedcomPath)
	if err != nil {
		return err
	}
	tr := tree.New(doc)

	summary := CheckSummary{
		Mode:        "check",
		GedcomPath:  gedcomPath,
		Individuals: tr.IndividualCount(),
		Families:    tr.FamilyCount(),
	}

	var missingIndividuals []string
	for _, famID := range tr.FamilyIDs() {
		fam, ok := tr.Family(famID)
		if !ok {
			continue
		}
		refs := make([]string, 0, len(fam.Children)+2)
		refs = append(refs, fam.Husband, fam.Wife)
		refs = append(refs, fam.Children...)
		for _, id := range refs {
			if id == "" {
				continue
			}
			if _, ok := tr.Individual(id); !ok {
				missingIndividuals = append(missingIndividuals, id)
			}
		}
	}

	var missingFamilies []string
	var unparsedDates []string
	for _, personID := range tr.IndividualIDs() {
		person, ok := tr.Individual(personID)
		if !ok {
			continue
		}
		refs := make([]string, 0, len(person.FamS)+1)
		refs = append(refs, person.FamS...)
		if person.FamC != "" {
			refs = append(refs, person.FamC)
		}
		for _, id := range refs {
			if id == "" {
				continue
			}
			if _, ok := tr.Family(id); !ok {
				missingFamilies = append(missingFamilies, id)
			}
		}
		if person.Birth.Date != "" {
			if _, ok := gedcom.ParseDate(person.Birth.Date); !ok {
				unparsedDates = append(unparsedDates, fmt.Sprintf("%s %q", person.ID, person.Birth.Date))
			}
		}
	}

	summary.MissingIndividuals = fileutil.MapKeysSorted(fileutil.ToSet(missingIndividuals))
	summary.MissingFamilies = fileutil.MapKeysSorted(fileutil.ToSet(missingFamilies))
	summary.UnparsedDates = unparsedDates
	summary.Healthy = len(summary.MissingIndividuals) == 0 && len(summary.MissingFamilies) == 0
	if !summary.Healthy {
		summary.Suggestions = append(summary.Suggestions, "re-export the GEDCOM file or remove the dangling references")
	}

	return PrintCheckSummary(summary, asJSON)
}
