package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gedsite-dev/gedsite/internal/bio"
	"github.com/gedsite-dev/gedsite/internal/gedcom"
	"github.com/gedsite-dev/gedsite/internal/site"
	"github.com/gedsite-dev/gedsite/internal/tree"
	"github.com/spf13/cobra"
)

// GenerateOptions carries the resolved inputs for one site build, after
// flag, config, and default precedence has been applied.
type GenerateOptions struct {
	FamilyID     string
	HusbandQuery string
	WifeQuery    string
	DocsDir      string
	Title        string
}

func RunGenerate(cmd *cobra.Command, args []string) error {
	gedcomPath := args[0]
	outputDir := args[1]

	asJSON, err := OptionalBoolFlag(cmd, "json", false)
	if err != nil {
		return err
	}

	configPath, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	opts, err := resolveGenerateOptions(cmd, cfg, gedcomPath)
	if err != nil {
		return err
	}

	return GenerateSite(gedcomPath, outputDir, opts, asJSON)
}

// resolveConfig loads an explicit config file, or probes the default
// one in the working directory. A missing default is not an error.
func resolveConfig(configPath string) (site.Config, error) {
	if configPath != "" {
		return site.LoadConfig(configPath)
	}
	cfg, err := site.LoadConfig(site.DefaultConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return site.Config{}, nil
		}
		return site.Config{}, err
	}
	return cfg, nil
}

func resolveGenerateOptions(cmd *cobra.Command, cfg site.Config, gedcomPath string) (GenerateOptions, error) {
	husband, err := OptionalStringFlag(cmd, "base-husband")
	if err != nil {
		return GenerateOptions{}, err
	}
	wife, err := OptionalStringFlag(cmd, "base-wife")
	if err != nil {
		return GenerateOptions{}, err
	}
	familyID, err := OptionalStringFlag(cmd, "base-family-id")
	if err != nil {
		return GenerateOptions{}, err
	}
	docs, err := OptionalStringFlag(cmd, "docs")
	if err != nil {
		return GenerateOptions{}, err
	}
	title, err := OptionalStringFlag(cmd, "title")
	if err != nil {
		return GenerateOptions{}, err
	}

	defaults := site.DefaultConfig()
	opts := GenerateOptions{
		FamilyID:     firstNonEmpty(familyID, cfg.BaseFamilyID),
		HusbandQuery: firstNonEmpty(husband, cfg.BaseHusband, defaults.BaseHusband),
		WifeQuery:    firstNonEmpty(wife, cfg.BaseWife, defaults.BaseWife),
		Title:        firstNonEmpty(title, cfg.Title),
	}

	explicitDocs := firstNonEmpty(docs, cfg.DocsDir)
	if explicitDocs != "" {
		info, err := os.Stat(explicitDocs)
		if err != nil {
			return GenerateOptions{}, fmt.Errorf("failed to access docs directory %q: %w", explicitDocs, err)
		}
		if !info.IsDir() {
			return GenerateOptions{}, fmt.Errorf("docs path %q is not a directory", explicitDocs)
		}
		opts.DocsDir = explicitDocs
	} else {
		opts.DocsDir = filepath.Dir(gedcomPath)
	}

	return opts, nil
}

// GenerateSite runs the full pipeline: parse the GEDCOM file, select
// the base couple, match biographies, and write the site.
func GenerateSite(gedcomPath, outputDir string, opts GenerateOptions, asJSON bool) error {
	start := time.Now()

	doc, err := gedcom.ParseFile(gedcomPath)
	if err != nil {
		return err
	}
	tr := tree.New(doc)

	root, err := tr.SelectRoot(opts.FamilyID, opts.HusbandQuery, opts.WifeQuery)
	if err != nil {
		return err
	}

	biographies, err := bio.Load(opts.DocsDir, tr.ChildrenOf(root.Family))
	if err != nil {
		return err
	}

	s := site.Build(tr, root, biographies, opts.Title)

	reporter := newRenderProgressReporter("render", len(s.Pages)+2, asJSON)
	written := 0
	writer := &site.Writer{
		OutputDir: outputDir,
		Progress: func(page string) {
			written++
			reporter.Update(page, written)
		},
	}
	stats, err := writer.WriteAll(s)
	if err != nil {
		return err
	}
	reporter.Done(written)

	summary := RunSummary{
		Mode:        "generate",
		GedcomPath:  gedcomPath,
		OutputDir:   outputDir,
		BaseFamily:  root.Family.ID,
		Individuals: tr.IndividualCount(),
		Families:    tr.FamilyCount(),
		Descendants: len(s.Descendants),
		Pages:       len(s.Pages),
		Biographies: len(biographies),
		Written:     stats.Written,
		Unchanged:   stats.Unchanged,
		DurationMS:  time.Since(start).Milliseconds(),
	}
	return PrintRunSummary(summary, asJSON)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
