package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(tb testing.TB, content string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "gedsite.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tb.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigReadsFields(t *testing.T) {
	path := writeConfig(t, `base_husband: Charles Handley
base_wife: Ida Mae Rucker
base_family_id: "@F7@"
title: Handley Family Tree
docs_dir: ./docs
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.BaseHusband != "Charles Handley" {
		t.Fatalf("unexpected base husband: %q", cfg.BaseHusband)
	}
	if cfg.BaseWife != "Ida Mae Rucker" {
		t.Fatalf("unexpected base wife: %q", cfg.BaseWife)
	}
	if cfg.BaseFamilyID != "@F7@" {
		t.Fatalf("unexpected base family ID: %q", cfg.BaseFamilyID)
	}
	if cfg.Title != "Handley Family Tree" {
		t.Fatalf("unexpected title: %q", cfg.Title)
	}
	if cfg.DocsDir != "./docs" {
		t.Fatalf("unexpected docs dir: %q", cfg.DocsDir)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("empty config should load cleanly: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("empty config should be zero valued: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "base_husbnad: Charles Handley\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseHusband != "David Handley" || cfg.BaseWife != "Verna Mae Rucker Handley" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
