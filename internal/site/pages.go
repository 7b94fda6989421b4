package site

import (
	"path"
	"path/filepath"

	"github.com/gedsite-dev/gedsite/internal/nameutil"
	"github.com/gedsite-dev/gedsite/internal/tree"
)

// Output layout, relative to the site root.
const (
	IndexFile  = "index.html"
	PeopleDir  = "people"
	AssetsDir  = "assets"
	StylesFile = "styles.css"
)

// PageLookup maps descendant IDs to site-relative page paths in slash
// form ("people/<slug>.html").
type PageLookup map[string]string

// BuildPageLookup assigns every resolvable descendant a page path.
// Dangling IDs get no page. Slugs embed the record ID, so descendants
// sharing a display name still get distinct paths.
func BuildPageLookup(tr *tree.Tree, descendants []string) PageLookup {
	lookup := make(PageLookup, len(descendants))
	for _, id := range descendants {
		person, ok := tr.Individual(id)
		if !ok {
			continue
		}
		slug := nameutil.Slugify(person.DisplayName(), person.ID)
		lookup[id] = path.Join(PeopleDir, slug+".html")
	}
	return lookup
}

// RelLink resolves the href that reaches toPage from fromPage. Both
// arguments are site-relative slash paths.
func RelLink(fromPage, toPage string) string {
	rel, err := filepath.Rel(path.Dir(fromPage), toPage)
	if err != nil {
		return toPage
	}
	return filepath.ToSlash(rel)
}
