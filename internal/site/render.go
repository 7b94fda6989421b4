package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path"

	"github.com/gedsite-dev/gedsite/internal/fileutil"
	"github.com/gedsite-dev/gedsite/internal/gedcom"
)

// link is one entry in a comma-joined name list. Meta carries the
// marriage description on spouse entries.
type link struct {
	Name string
	Href string
	Meta string
}

// card is one person box. Index child cards carry a spouse line,
// person-page child cards do not.
type card struct {
	Name    string
	Href    string
	Born    string
	Died    string
	Spouses []link
}

type indexData struct {
	Title      string
	Stylesheet string
	Husband    card
	Wife       card
	Children   []card
}

type personData struct {
	Stylesheet string
	Person     card
	Spouses    []link
	Parents    []link
	IndexHref  string
	BackLabel  string
	Biography  template.HTML
	Children   []card
}

func (s *Site) renderIndex() (string, error) {
	children := s.Tree.ChildrenOf(s.Root.Family)
	gedcom.SortByBirth(children)

	cards := make([]card, 0, len(children))
	for _, child := range children {
		cards = append(cards, card{
			Name:    child.DisplayName(),
			Href:    s.href(IndexFile, child.ID),
			Born:    child.Birth.Description(),
			Died:    child.Death.Description(),
			Spouses: s.spouseLinks(child, IndexFile),
		})
	}

	data := indexData{
		Title:      s.indexTitle(),
		Stylesheet: RelLink(IndexFile, path.Join(AssetsDir, StylesFile)),
		Husband:    vitalsCard(s.Root.Husband),
		Wife:       vitalsCard(s.Root.Wife),
		Children:   cards,
	}
	return execute("index", data)
}

func (s *Site) renderPerson(person *gedcom.Individual, pagePath string) (string, error) {
	childIDs := make([]string, 0)
	for _, famID := range person.FamS {
		if fam, ok := s.Tree.Family(famID); ok {
			childIDs = append(childIDs, fam.Children...)
		}
	}
	children := make([]*gedcom.Individual, 0, len(childIDs))
	for _, id := range fileutil.DedupeStrings(childIDs) {
		if child, ok := s.Tree.Individual(id); ok {
			children = append(children, child)
		}
	}
	gedcom.SortByBirth(children)

	cards := make([]card, 0, len(children))
	for _, child := range children {
		cards = append(cards, card{
			Name: child.DisplayName(),
			Href: s.href(pagePath, child.ID),
			Born: child.Birth.Description(),
			Died: child.Death.Description(),
		})
	}

	data := personData{
		Stylesheet: RelLink(pagePath, path.Join(AssetsDir, StylesFile)),
		Person:     vitalsCard(person),
		Spouses:    s.spouseLinks(person, pagePath),
		Parents:    s.parentLinks(person, pagePath),
		IndexHref:  RelLink(pagePath, IndexFile),
		BackLabel:  s.backLabel(),
		Biography:  s.Biographies[person.ID],
		Children:   cards,
	}
	return execute("person", data)
}

func vitalsCard(person *gedcom.Individual) card {
	return card{
		Name: person.DisplayName(),
		Born: person.Birth.Description(),
		Died: person.Death.Description(),
	}
}

// href returns a relative link to a person's page, or "" when the
// person has no page.
func (s *Site) href(fromPage, personID string) string {
	target, ok := s.Pages[personID]
	if !ok {
		return ""
	}
	return RelLink(fromPage, target)
}

func (s *Site) spouseLinks(person *gedcom.Individual, fromPage string) []link {
	var links []link
	for _, famID := range person.FamS {
		fam, ok := s.Tree.Family(famID)
		if !ok {
			continue
		}
		spouse, ok := s.Tree.Spouse(fam, person.ID)
		if !ok {
			continue
		}
		links = append(links, link{
			Name: spouse.DisplayName(),
			Href: s.href(fromPage, spouse.ID),
			Meta: fam.Marriage.Description(),
		})
	}
	return links
}

// parentLinks resolves the person's child-of family into husband and
// wife entries. Parents outside the descendant set link back to the
// index when they are the root couple, otherwise they appear unlinked.
func (s *Site) parentLinks(person *gedcom.Individual, fromPage string) []link {
	if person.FamC == "" {
		return nil
	}
	fam, ok := s.Tree.Family(person.FamC)
	if !ok {
		return nil
	}
	var links []link
	for _, parentID := range []string{fam.Husband, fam.Wife} {
		if parentID == "" {
			continue
		}
		parent, ok := s.Tree.Individual(parentID)
		if !ok {
			continue
		}
		href := s.href(fromPage, parentID)
		if href == "" && fam.ID == s.Root.Family.ID {
			href = RelLink(fromPage, IndexFile)
		}
		links = append(links, link{Name: parent.DisplayName(), Href: href})
	}
	return links
}

func (s *Site) indexTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("%s & %s Family Tree", s.Root.Husband.DisplayName(), s.Root.Wife.DisplayName())
}

func (s *Site) backLabel() string {
	return fmt.Sprintf("Back to %s & %s", s.Root.Husband.DisplayName(), s.Root.Wife.DisplayName())
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}

var pageTemplates = template.Must(template.New("pages").Parse(pageTemplateText))

const pageTemplateText = `{{define "index"}}<!DOCTYPE html>
<html lang='en'>
<head>
    <meta charset='utf-8'>
    <title>{{.Title}}</title>
    <link rel='stylesheet' href='{{.Stylesheet}}'>
</head>
<body>
    <div class='container'>
        <header>
            <h1>{{.Husband.Name}} &amp; {{.Wife.Name}}</h1>
            <p class='lead'>Children are displayed to the right. Click a name to explore that branch of the family.</p>
        </header>
        <section class='base-layout'>
            <div class='base-column'>
                {{template "basecard" .Husband}}
                {{template "basecard" .Wife}}
            </div>
            <div class='children-column'>
                <h2>Children</h2>
                <div class='children-grid'>
                    {{range .Children}}{{template "childcard" .}}{{end}}
                </div>
            </div>
        </section>
    </div>
</body>
</html>
{{end}}
{{define "person"}}<!DOCTYPE html>
<html lang='en'>
<head>
    <meta charset='utf-8'>
    <title>{{.Person.Name}} &mdash; Family Tree</title>
    <link rel='stylesheet' href='{{.Stylesheet}}'>
</head>
<body>
    <div class='container'>
        <header class='page-header'>
            <h1>{{.Person.Name}}</h1>
        </header>
        <section class='person-details'>
            {{template "vitals" .Person}}
            {{template "spouseline" .Spouses}}{{if .Parents}}
            <p><strong>Parent(s):</strong> {{template "links" .Parents}}</p>{{end}}
            <p><a href='{{.IndexHref}}'>&larr; {{.BackLabel}}</a></p>
        </section>{{if .Biography}}
        <section class='person-biography'><h2>Biography</h2>{{.Biography}}</section>{{end}}
        <section class='person-children'><h2>Children</h2>{{if .Children}}<div class='children-grid'>{{range .Children}}{{template "grandcard" .}}{{end}}</div>{{else}}<p class='empty'>No recorded children.</p>{{end}}</section>
    </div>
</body>
</html>
{{end}}
{{define "basecard"}}<div class='person-card'><h2>{{.Name}}</h2>{{template "vitals" .}}</div>{{end}}
{{define "childcard"}}<div class='person-card'><h3>{{template "namelink" .}}</h3>{{template "vitals" .}}{{template "spouseline" .Spouses}}</div>{{end}}
{{define "grandcard"}}<div class='person-card'><h4>{{template "namelink" .}}</h4>{{template "vitals" .}}</div>{{end}}
{{define "namelink"}}{{if .Href}}<a href="{{.Href}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}{{end}}
{{define "vitals"}}{{if .Born}}<p><strong>Born:</strong> {{.Born}}</p>{{end}}{{if .Died}}<p><strong>Died:</strong> {{.Died}}</p>{{end}}{{end}}
{{define "spouseline"}}<p><strong>Spouse(s):</strong> {{if .}}{{template "links" .}}{{else}}None recorded.{{end}}</p>{{end}}
{{define "links"}}{{range $i, $l := .}}{{if $i}}, {{end}}{{if $l.Href}}<a href="{{$l.Href}}">{{$l.Name}}</a>{{else}}{{$l.Name}}{{end}}{{if $l.Meta}} <span class='meta'>(m. {{$l.Meta}})</span>{{end}}{{end}}{{end}}`
