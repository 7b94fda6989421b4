package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	recIndividual = "INDI"
	recFamily     = "FAM"
)

// parseState tracks the record and level-1 section the scanner is inside
// of. Level-0 lines reset it, so damage from malformed regions never
// leaks past the next record boundary.
type parseState struct {
	doc        *Document
	individual *Individual
	family     *Family
	section    string
}

// Parse reads GEDCOM lines from r and builds a Document. Lines that do
// not fit the level-tag-value shape are skipped, as are tags outside the
// small set the site needs. The only errors reported are read failures.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	st := &parseState{doc: doc}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		level, tag, value, ok := splitLine(line)
		if !ok {
			continue
		}
		st.apply(level, tag, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gedcom input: %w", err)
	}
	return doc, nil
}

// ParseFile parses the GEDCOM file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gedcom file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// splitLine breaks a line into level, tag (or pointer) and value. The
// value keeps its spacing; a missing value is "". Lines that do not lead
// with an integer level, indented ones included, are rejected.
func splitLine(line string) (level int, tag, value string, ok bool) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return 0, "", "", false
	}
	level, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", "", false
	}
	if len(parts) == 3 {
		value = parts[2]
	}
	return level, parts[1], value, true
}

func isPointer(token string) bool {
	return strings.HasPrefix(token, "@") && strings.HasSuffix(token, "@")
}

func (st *parseState) apply(level int, tag, value string) {
	pointer := ""
	if isPointer(tag) {
		pointer = tag
		tag = value
		value = ""
	}

	switch level {
	case 0:
		st.individual = nil
		st.family = nil
		st.section = ""
		switch {
		case tag == recIndividual && pointer != "":
			in := &Individual{ID: pointer}
			st.doc.Individuals[pointer] = in
			st.individual = in
		case tag == recFamily && pointer != "":
			fam := &Family{ID: pointer}
			st.doc.Families[pointer] = fam
			st.family = fam
		}
	case 1:
		st.section = tag
		switch {
		case st.individual != nil:
			st.applyIndividual(tag, value)
		case st.family != nil:
			st.applyFamily(tag, value)
		}
	case 2:
		switch {
		case st.individual != nil:
			st.applyIndividualDetail(tag, value)
		case st.family != nil:
			st.applyFamilyDetail(tag, value)
		}
	}
}

func (st *parseState) applyIndividual(tag, value string) {
	switch tag {
	case "NAME":
		st.individual.Name = value
	case "GIVN":
		st.individual.GivenName = value
	case "SURN":
		st.individual.Surname = value
	case "SEX":
		st.individual.Sex = value
	case "FAMC":
		st.individual.FamC = value
	case "FAMS":
		st.individual.FamS = append(st.individual.FamS, value)
	}
}

func (st *parseState) applyIndividualDetail(tag, value string) {
	switch st.section {
	case "BIRT":
		switch tag {
		case "DATE":
			st.individual.Birth.Date = value
		case "PLAC":
			st.individual.Birth.Place = value
		}
	case "DEAT":
		switch tag {
		case "DATE":
			st.individual.Death.Date = value
		case "PLAC":
			st.individual.Death.Place = value
		}
	}
}

func (st *parseState) applyFamily(tag, value string) {
	switch tag {
	case "HUSB":
		st.family.Husband = value
	case "WIFE":
		st.family.Wife = value
	case "CHIL":
		st.family.Children = append(st.family.Children, value)
	}
}

func (st *parseState) applyFamilyDetail(tag, value string) {
	if st.section != "MARR" {
		return
	}
	switch tag {
	case "DATE":
		st.family.Marriage.Date = value
	case "PLAC":
		st.family.Marriage.Place = value
	}
}
