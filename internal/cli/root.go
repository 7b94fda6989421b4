package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gedsite",
		Short: "Generate a static descendant website from a GEDCOM file",
		Long: `Gedsite reads a GEDCOM genealogy export, selects a base couple, and
renders a browsable static site: an index page for the couple and one
page per descendant, with biographies matched from a documents folder.

Output is plain HTML and CSS that can be hosted anywhere.`,
	}

	// Core Commands
	generateCmd := &cobra.Command{
		Use:   "generate <gedcom-file> <output-dir>",
		Short: "Render the descendant site into the output directory",
		Args:  cobra.ExactArgs(2),
		RunE:  RunGenerate,
	}
	generateCmd.Flags().String("base-husband", "", "Name (or partial name) of the base husband")
	generateCmd.Flags().String("base-wife", "", "Name (or partial name) of the base wife")
	generateCmd.Flags().String("base-family-id", "", "Explicit family ID of the base couple (e.g. @F2@)")
	generateCmd.Flags().String("docs", "", "Directory of biography documents (default: the GEDCOM file's directory)")
	generateCmd.Flags().String("title", "", "Index page title (default: derived from the base couple)")
	generateCmd.Flags().String("config", "", "Path to a config file (default: ./gedsite.yaml when present)")
	generateCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter gedsite.yaml in the current directory",
		RunE:  RunInit,
	}

	// Inspect Commands
	checkCmd := &cobra.Command{
		Use:   "check <gedcom-file>",
		Short: "Validate a GEDCOM file and report dangling references",
		Args:  cobra.ExactArgs(1),
		RunE:  RunCheck,
	}
	checkCmd.Flags().Bool("json", false, "Print machine-readable check output")

	serveCmd := &cobra.Command{
		Use:   "serve <site-dir>",
		Short: "Serve a generated site over HTTP for local preview",
		Args:  cobra.ExactArgs(1),
		RunE:  RunServe,
	}
	serveCmd.Flags().String("addr", ":8080", "Listen address")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gedsite %s\n", version)
		},
	}

	rootCmd.AddCommand(
		generateCmd,
		initCmd,
		checkCmd,
		serveCmd,
		versionCmd,
	)

	return rootCmd
}
