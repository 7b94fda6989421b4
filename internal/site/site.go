package site

import (
	"fmt"
	"html/template"
	"path"
	"path/filepath"

	"github.com/gedsite-dev/gedsite/internal/fileutil"
	"github.com/gedsite-dev/gedsite/internal/tree"
)

// Site is the fully resolved model for one generation run: the root
// couple, their descendant set, page assignments, and matched
// biographies.
type Site struct {
	Tree        *tree.Tree
	Root        *tree.RootSelection
	Descendants []string
	Pages       PageLookup
	Biographies map[string]template.HTML
	Title       string
}

// Build resolves the descendant set and page assignments for a
// selection. Biographies may be nil. An empty title derives one from
// the couple's names at render time.
func Build(tr *tree.Tree, root *tree.RootSelection, biographies map[string]template.HTML, title string) *Site {
	descendants := tr.Descendants(root.Family)
	return &Site{
		Tree:        tr,
		Root:        root,
		Descendants: descendants,
		Pages:       BuildPageLookup(tr, descendants),
		Biographies: biographies,
		Title:       title,
	}
}

// Stats counts what one write pass did.
type Stats struct {
	Written   int
	Unchanged int
}

// Writer emits a site under OutputDir, leaving files whose content did
// not change since a previous run untouched. Progress, when set, is
// called once per emitted file.
type Writer struct {
	OutputDir string
	Progress  func(page string)
}

// WriteAll renders the stylesheet, the index, and one page per
// descendant, in that order.
func (w *Writer) WriteAll(s *Site) (Stats, error) {
	var stats Stats
	write := func(rel, content string) error {
		full := filepath.Join(w.OutputDir, filepath.FromSlash(rel))
		changed, err := fileutil.WriteIfChangedTracked(full, []byte(fileutil.EnsureTrailingNewline(content)))
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		if changed {
			stats.Written++
		} else {
			stats.Unchanged++
		}
		if w.Progress != nil {
			w.Progress(rel)
		}
		return nil
	}

	if err := write(path.Join(AssetsDir, StylesFile), stylesheet); err != nil {
		return stats, err
	}

	index, err := s.renderIndex()
	if err != nil {
		return stats, err
	}
	if err := write(IndexFile, index); err != nil {
		return stats, err
	}

	for _, id := range s.Descendants {
		pagePath, ok := s.Pages[id]
		if !ok {
			continue
		}
		person, ok := s.Tree.Individual(id)
		if !ok {
			continue
		}
		page, err := s.renderPerson(person, pagePath)
		if err != nil {
			return stats, err
		}
		if err := write(pagePath, page); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
