package cli

import (
	"fmt"

	"github.com/gedsite-dev/gedsite/internal/fileutil"
	"github.com/gedsite-dev/gedsite/internal/site"
	"github.com/spf13/cobra"
)

const starterConfig = `# gedsite configuration. Command-line flags override these values.
base_husband: David Handley
base_wife: Verna Mae Rucker Handley
# base_family_id: "@F1@"
# title: My Family Tree
# docs_dir: ./biographies
`

// RunInit writes a starter config file in the working directory. An
// existing file is left untouched.
func RunInit(cmd *cobra.Command, args []string) error {
	if err := fileutil.WriteIfMissing(site.DefaultConfigFile, []byte(starterConfig), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", site.DefaultConfigFile, err)
	}
	fmt.Printf("Initialized %s\n", site.DefaultConfigFile)
	return nil
}
