package bio

import (
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gedsite-dev/gedsite/internal/gedcom"
	"github.com/gedsite-dev/gedsite/internal/nameutil"
)

const (
	docxExt     = ".docx"
	markdownExt = ".md"
)

// document is one discovered biography source. Markdown files are
// rendered at discovery time; Word documents are extracted only when a
// person actually matches.
type document struct {
	path     string
	markdown template.HTML
}

// Load matches biography documents in dir against people and returns
// HTML fragments keyed by person ID. Matching is by normalized "first
// last" name key, exact only. A person with no key, no matching
// document, or whose document yields no content is simply absent from
// the result. A missing dir means no biographies, not an error.
func Load(dir string, people []*gedcom.Individual) (map[string]template.HTML, error) {
	docs, err := discover(dir)
	if err != nil {
		return nil, err
	}

	out := make(map[string]template.HTML)
	for _, person := range people {
		key, ok := nameutil.NameKey(person.DisplayName())
		if !ok {
			continue
		}
		doc, ok := docs[key]
		if !ok {
			continue
		}
		fragment := doc.markdown
		if fragment == "" {
			fragment = paragraphsToHTML(extractParagraphs(doc.path))
		}
		if fragment == "" {
			continue
		}
		out[person.ID] = fragment
	}
	return out, nil
}

// discover indexes biography files by name key. Word documents are
// keyed by filename stem; markdown files are read eagerly so a name
// given in front matter can override the filename, and they win over a
// Word document with the same key.
func discover(dir string) (map[string]document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read biography directory: %w", err)
	}

	docs := make(map[string]document)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != docxExt {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), docxExt)
		key, ok := nameutil.NameKey(stem)
		if !ok {
			continue
		}
		docs[key] = document{path: filepath.Join(dir, entry.Name())}
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != markdownExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name, fragment, ok := renderMarkdown(path)
		if !ok {
			continue
		}
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), markdownExt)
		}
		key, ok := nameutil.NameKey(name)
		if !ok {
			continue
		}
		docs[key] = document{path: path, markdown: fragment}
	}
	return docs, nil
}

// paragraphsToHTML wraps paragraphs in <p> tags, escaping each one
// independently.
func paragraphsToHTML(paragraphs []string) template.HTML {
	if len(paragraphs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(p))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}
