package gedcom

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gedsite-dev/gedsite/internal/nameutil"
)

// Layouts tried in order against a cleaned date string. Month-first
// slash dates win over day-first ones, matching how the source data was
// entered.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
}

var looseSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDate interprets the free-text date formats that appear in the
// wild: slash dates, spelled-out months, bare years. It reports false
// for anything it cannot make sense of; callers keep the raw text for
// display either way.
func ParseDate(value string) (time.Time, bool) {
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(value, ",", " ")), " ")
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}

	if len(cleaned) == 4 && isDigits(cleaned) {
		year, err := strconv.Atoi(cleaned)
		if err == nil {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := looseSlashDate.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() == year && int(t.Month()) == month && t.Day() == day {
			return t, true
		}
	}

	return time.Time{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// BirthBefore reports whether a sorts ahead of b: people with parseable
// birth dates come first in date order, and everything else falls back
// to normalized display names.
func BirthBefore(a, b *Individual) bool {
	at, aok := ParseDate(a.Birth.Date)
	bt, bok := ParseDate(b.Birth.Date)
	switch {
	case aok && bok:
		if !at.Equal(bt) {
			return at.Before(bt)
		}
	case aok:
		return true
	case bok:
		return false
	}
	return nameutil.Normalize(a.DisplayName()) < nameutil.Normalize(b.DisplayName())
}

// SortByBirth orders people oldest first, undated people last by name.
// The sort is stable so equal keys keep their incoming order.
func SortByBirth(people []*Individual) {
	sort.SliceStable(people, func(i, j int) bool {
		return BirthBefore(people[i], people[j])
	})
}
