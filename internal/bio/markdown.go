package bio

import (
	"bytes"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(meta.Meta),
)

// renderMarkdown converts a markdown biography to an HTML fragment. The
// optional front-matter "name" field names the person the document
// belongs to; it is "" when absent. ok is false when the file cannot be
// read or renders to nothing.
func renderMarkdown(path string) (name string, fragment template.HTML, ok bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	ctx := parser.NewContext()
	var buf bytes.Buffer
	if err := markdown.Convert(content, &buf, parser.WithContext(ctx)); err != nil {
		return "", "", false
	}
	body := strings.TrimSpace(buf.String())
	if body == "" {
		return "", "", false
	}

	if fields := meta.Get(ctx); fields != nil {
		if v, isString := fields["name"].(string); isString {
			name = v
		}
	}
	return name, template.HTML(body), true
}
