package site

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gedsite-dev/gedsite/internal/gedcom"
	"github.com/gedsite-dev/gedsite/internal/tree"
)

// fixtureSource covers three generations: David and Verna at the root,
// a married daughter with a child, an unmarried son, an undated
// daughter with no family links, and a dangling child reference.
const fixtureSource = `0 HEAD
1 SOUR gedsite
0 @I1@ INDI
1 NAME David /Handley/
1 SEX M
1 BIRT
2 DATE 1 Jan 1900
1 FAMS @F1@
0 @I2@ INDI
1 NAME Verna Mae /Rucker/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Mary /Handley/
1 SEX F
1 BIRT
2 DATE 2 Feb 1925
2 PLAC Salem, Missouri
1 FAMC @F1@
1 FAMS @F2@
0 @I4@ INDI
1 NAME John /Handley/
1 SEX M
1 BIRT
2 DATE 3 Mar 1927
1 FAMC @F1@
0 @I5@ INDI
1 NAME Edith /Handley/
1 SEX F
0 @I20@ INDI
1 NAME Walter /Price/
1 SEX M
1 FAMS @F2@
0 @I30@ INDI
1 NAME Ruth /Price/
1 SEX F
1 FAMC @F2@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
1 CHIL @I5@
1 CHIL @I9@
0 @F2@ FAM
1 HUSB @I20@
1 WIFE @I3@
1 CHIL @I30@
1 MARR
2 DATE 14 Feb 1946
0 TRLR
`

func newFixtureSite(tb testing.TB) *Site {
	tb.Helper()
	doc, err := gedcom.Parse(strings.NewReader(fixtureSource))
	if err != nil {
		tb.Fatalf("failed to parse fixture: %v", err)
	}
	tr := tree.New(doc)
	root, err := tr.SelectRoot("@F1@", "", "")
	if err != nil {
		tb.Fatalf("failed to select root family: %v", err)
	}
	biographies := map[string]template.HTML{
		"@I3@": template.HTML("<p>Mary loved Salem.</p>"),
	}
	return Build(tr, root, biographies, "")
}

func mustPerson(tb testing.TB, s *Site, id string) *gedcom.Individual {
	tb.Helper()
	person, ok := s.Tree.Individual(id)
	if !ok {
		tb.Fatalf("individual %s not in fixture", id)
	}
	return person
}

func TestBuildPageLookupAssignsSlugs(t *testing.T) {
	s := newFixtureSite(t)

	if len(s.Pages) != 4 {
		t.Fatalf("expected 4 pages, got %d: %v", len(s.Pages), s.Pages)
	}
	if got := s.Pages["@I3@"]; got != "people/mary-handley-I3.html" {
		t.Fatalf("unexpected page path for @I3@: %s", got)
	}
	if got := s.Pages["@I30@"]; got != "people/ruth-price-I30.html" {
		t.Fatalf("unexpected page path for @I30@: %s", got)
	}
	if _, ok := s.Pages["@I9@"]; ok {
		t.Fatalf("dangling child @I9@ should not get a page")
	}
}

func TestRelLink(t *testing.T) {
	cases := []struct {
		from, to, want string
	}{
		{"index.html", "people/mary-handley-I3.html", "people/mary-handley-I3.html"},
		{"index.html", "assets/styles.css", "assets/styles.css"},
		{"people/mary-handley-I3.html", "index.html", "../index.html"},
		{"people/mary-handley-I3.html", "assets/styles.css", "../assets/styles.css"},
		{"people/mary-handley-I3.html", "people/ruth-price-I30.html", "ruth-price-I30.html"},
	}
	for _, tc := range cases {
		if got := RelLink(tc.from, tc.to); got != tc.want {
			t.Fatalf("RelLink(%q, %q) = %q, want %q", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRenderIndex(t *testing.T) {
	s := newFixtureSite(t)

	page, err := s.renderIndex()
	if err != nil {
		t.Fatalf("failed to render index: %v", err)
	}

	wants := []string{
		"<title>David Handley &amp; Verna Mae Rucker Family Tree</title>",
		"<link rel='stylesheet' href='assets/styles.css'>",
		"<h1>David Handley &amp; Verna Mae Rucker</h1>",
		"<h2>David Handley</h2>",
		"<p><strong>Born:</strong> 1 Jan 1900</p>",
		`<h3><a href="people/mary-handley-I3.html">Mary Handley</a></h3>`,
		"Walter Price <span class='meta'>(m. 14 Feb 1946)</span>",
		"<p><strong>Spouse(s):</strong> None recorded.</p>",
	}
	for _, want := range wants {
		if !strings.Contains(page, want) {
			t.Fatalf("index missing %q:\n%s", want, page)
		}
	}

	mary := strings.Index(page, "mary-handley")
	john := strings.Index(page, "john-handley")
	edith := strings.Index(page, "edith-handley")
	if mary < 0 || john < 0 || edith < 0 || !(mary < john && john < edith) {
		t.Fatalf("index children out of birth order: mary=%d john=%d edith=%d", mary, john, edith)
	}
}

func TestRenderIndexCustomTitle(t *testing.T) {
	s := newFixtureSite(t)
	titled := Build(s.Tree, s.Root, nil, "Handley Kin")

	page, err := titled.renderIndex()
	if err != nil {
		t.Fatalf("failed to render index: %v", err)
	}
	if !strings.Contains(page, "<title>Handley Kin</title>") {
		t.Fatalf("custom title not used:\n%s", page)
	}
}

func TestRenderPersonDetails(t *testing.T) {
	s := newFixtureSite(t)
	mary := mustPerson(t, s, "@I3@")

	page, err := s.renderPerson(mary, s.Pages["@I3@"])
	if err != nil {
		t.Fatalf("failed to render person page: %v", err)
	}

	wants := []string{
		"<title>Mary Handley &mdash; Family Tree</title>",
		"<link rel='stylesheet' href='../assets/styles.css'>",
		"<h1>Mary Handley</h1>",
		"<p><strong>Born:</strong> 2 Feb 1925, Salem, Missouri</p>",
		"Walter Price <span class='meta'>(m. 14 Feb 1946)</span>",
		`<p><strong>Parent(s):</strong> <a href="../index.html">David Handley</a>, <a href="../index.html">Verna Mae Rucker</a></p>`,
		"<p><a href='../index.html'>&larr; Back to David Handley &amp; Verna Mae Rucker</a></p>",
		"<section class='person-biography'><h2>Biography</h2><p>Mary loved Salem.</p></section>",
		`<h4><a href="ruth-price-I30.html">Ruth Price</a></h4>`,
	}
	for _, want := range wants {
		if !strings.Contains(page, want) {
			t.Fatalf("person page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderPersonOmitsEmptySections(t *testing.T) {
	s := newFixtureSite(t)
	edith := mustPerson(t, s, "@I5@")

	page, err := s.renderPerson(edith, s.Pages["@I5@"])
	if err != nil {
		t.Fatalf("failed to render person page: %v", err)
	}

	if !strings.Contains(page, "<p><strong>Spouse(s):</strong> None recorded.</p>") {
		t.Fatalf("spouse placeholder missing:\n%s", page)
	}
	if strings.Contains(page, "Parent(s):") {
		t.Fatalf("parents line should be omitted without a child-of family:\n%s", page)
	}
	if strings.Contains(page, "person-biography") {
		t.Fatalf("biography section should be omitted:\n%s", page)
	}
	if !strings.Contains(page, "<section class='person-children'><h2>Children</h2><p class='empty'>No recorded children.</p></section>") {
		t.Fatalf("empty children placeholder missing:\n%s", page)
	}
}

func TestRenderPersonParentOutsideSite(t *testing.T) {
	s := newFixtureSite(t)
	ruth := mustPerson(t, s, "@I30@")

	page, err := s.renderPerson(ruth, s.Pages["@I30@"])
	if err != nil {
		t.Fatalf("failed to render person page: %v", err)
	}

	want := `<p><strong>Parent(s):</strong> Walter Price, <a href="mary-handley-I3.html">Mary Handley</a></p>`
	if !strings.Contains(page, want) {
		t.Fatalf("person page missing %q:\n%s", want, page)
	}
}

func TestWriteAll(t *testing.T) {
	s := newFixtureSite(t)
	dir := t.TempDir()

	var emitted []string
	w := &Writer{OutputDir: dir, Progress: func(page string) { emitted = append(emitted, page) }}

	stats, err := w.WriteAll(s)
	if err != nil {
		t.Fatalf("failed to write site: %v", err)
	}
	if stats.Written != 6 || stats.Unchanged != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(emitted) != 6 || emitted[0] != "assets/styles.css" || emitted[1] != "index.html" {
		t.Fatalf("unexpected emission order: %v", emitted)
	}
	if emitted[2] != "people/ruth-price-I30.html" {
		t.Fatalf("person pages not written in sorted ID order: %v", emitted)
	}

	files := []string{
		"assets/styles.css",
		"index.html",
		"people/edith-handley-I5.html",
		"people/john-handley-I4.html",
		"people/mary-handley-I3.html",
		"people/ruth-price-I30.html",
	}
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("missing output file %s: %v", rel, err)
		}
		if !strings.HasSuffix(string(data), "\n") {
			t.Fatalf("%s does not end with a newline", rel)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, PeopleDir))
	if err != nil {
		t.Fatalf("failed to read people dir: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 person pages, got %d", len(entries))
	}

	again, err := w.WriteAll(s)
	if err != nil {
		t.Fatalf("failed to rewrite site: %v", err)
	}
	if again.Written != 0 || again.Unchanged != 6 {
		t.Fatalf("second pass should leave files untouched: %+v", again)
	}
}
