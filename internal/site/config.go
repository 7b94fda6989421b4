package site

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is probed in the working directory when no config
// flag is given.
const DefaultConfigFile = "gedsite.yaml"

// Config carries the root-couple selection and site chrome that would
// otherwise be given as flags. Flags win over config values, which win
// over defaults.
type Config struct {
	BaseHusband  string `yaml:"base_husband"`
	BaseWife     string `yaml:"base_wife"`
	BaseFamilyID string `yaml:"base_family_id"`
	Title        string `yaml:"title"`
	DocsDir      string `yaml:"docs_dir"`
}

// DefaultConfig returns the built-in root couple used when neither
// flags nor a config file name one.
func DefaultConfig() Config {
	return Config{
		BaseHusband: "David Handley",
		BaseWife:    "Verna Mae Rucker Handley",
	}
}

// LoadConfig reads a YAML config file. Unknown keys are rejected, and
// an empty file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
