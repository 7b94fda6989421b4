package gedcom

import "strings"

// Event is a dated/located life event (birth, death, marriage). Both
// fields are free text exactly as they appeared in the source.
type Event struct {
	Date  string
	Place string
}

// Description joins the present parts with ", ", or returns "" when the
// event carries no information.
func (e Event) Description() string {
	parts := make([]string, 0, 2)
	if e.Date != "" {
		parts = append(parts, e.Date)
	}
	if e.Place != "" {
		parts = append(parts, e.Place)
	}
	return strings.Join(parts, ", ")
}

// Individual is one person record. FamC points at the family the person
// is a child of; FamS lists the families the person is a spouse in, in
// source order. References may dangle in malformed files and are resolved
// permissively by consumers.
type Individual struct {
	ID        string
	Name      string
	GivenName string
	Surname   string
	Sex       string
	FamC      string
	FamS      []string
	Birth     Event
	Death     Event
}

// DisplayName derives the name shown on pages: the raw NAME value with
// the surname slashes removed and whitespace collapsed, else given name
// and surname joined, else the record ID.
func (in *Individual) DisplayName() string {
	if in.Name != "" {
		cleaned := strings.ReplaceAll(in.Name, "/", "")
		return strings.Join(strings.Fields(cleaned), " ")
	}
	pieces := make([]string, 0, 2)
	if in.GivenName != "" {
		pieces = append(pieces, in.GivenName)
	}
	if in.Surname != "" {
		pieces = append(pieces, in.Surname)
	}
	if len(pieces) == 0 {
		return in.ID
	}
	return strings.Join(pieces, " ")
}

// Family is one household record: up to two spouses and their children
// in source order.
type Family struct {
	ID       string
	Husband  string
	Wife     string
	Children []string
	Marriage Event
}

// Document holds every individual and family parsed from one source,
// keyed by record pointer. Entities are built once by the parser and not
// mutated afterwards.
type Document struct {
	Individuals map[string]*Individual
	Families    map[string]*Family
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		Individuals: make(map[string]*Individual),
		Families:    make(map[string]*Family),
	}
}
