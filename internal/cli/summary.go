package cli

import (
	"fmt"
	"strings"

	"github.com/gedsite-dev/gedsite/internal/fileutil"
)

type RunSummary struct {
	Mode        string `json:"mode"`
	GedcomPath  string `json:"gedcom_path"`
	OutputDir   string `json:"output_dir,omitempty"`
	BaseFamily  string `json:"base_family,omitempty"`
	Individuals int    `json:"individuals"`
	Families    int    `json:"families"`
	Descendants int    `json:"descendants"`
	Pages       int    `json:"pages"`
	Biographies int    `json:"biographies"`
	Written     int    `json:"written"`
	Unchanged   int    `json:"unchanged"`
	DurationMS  int64  `json:"duration_ms"`
}

type CheckSummary struct {
	Mode               string   `json:"mode"`
	GedcomPath         string   `json:"gedcom_path"`
	Individuals        int      `json:"individuals"`
	Families           int      `json:"families"`
	Healthy            bool     `json:"healthy"`
	MissingIndividuals []string `json:"missing_individuals,omitempty"`
	MissingFamilies    []string `json:"missing_families,omitempty"`
	UnparsedDates      []string `json:"unparsed_dates,omitempty"`
	Suggestions        []string `json:"suggestions,omitempty"`
}

func PrintRunSummary(summary RunSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(summary)
	}

	fmt.Printf("generate complete in %dms\n", summary.DurationMS)
	fmt.Printf("output: %s\n", summary.OutputDir)
	fmt.Printf("tree: individuals=%d families=%d descendants=%d base_family=%s\n",
		summary.Individuals, summary.Families, summary.Descendants, summary.BaseFamily)
	fmt.Printf("site: pages=%d biographies=%d written=%d unchanged=%d\n",
		summary.Pages, summary.Biographies, summary.Written, summary.Unchanged)
	return nil
}

func PrintCheckSummary(summary CheckSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(summary)
	}

	status := "issues"
	if summary.Healthy {
		status = "ok"
	}
	fmt.Printf("check: %s\n", status)
	fmt.Printf("records: individuals=%d families=%d\n", summary.Individuals, summary.Families)
	if len(summary.MissingIndividuals) > 0 {
		fmt.Printf("missing individuals (%d): %s\n", len(summary.MissingIndividuals), SummarizePaths(summary.MissingIndividuals, 8))
	}
	if len(summary.MissingFamilies) > 0 {
		fmt.Printf("missing families (%d): %s\n", len(summary.MissingFamilies), SummarizePaths(summary.MissingFamilies, 8))
	}
	if len(summary.UnparsedDates) > 0 {
		fmt.Printf("unparsed dates (%d): %s\n", len(summary.UnparsedDates), SummarizePaths(summary.UnparsedDates, 8))
	}
	for _, suggestion := range summary.Suggestions {
		fmt.Printf("next: %s\n", suggestion)
	}
	return nil
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}
