package gedcom

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   Individual
		want string
	}{
		{Individual{ID: "@I1@", Name: "David /Handley/"}, "David Handley"},
		{Individual{ID: "@I1@", Name: "Mary   Ellen /Rucker/"}, "Mary Ellen Rucker"},
		{Individual{ID: "@I1@", Name: "//"}, ""},
		{Individual{ID: "@I1@", GivenName: "David", Surname: "Handley"}, "David Handley"},
		{Individual{ID: "@I1@", GivenName: "David"}, "David"},
		{Individual{ID: "@I1@", Surname: "Handley"}, "Handley"},
		{Individual{ID: "@I1@"}, "@I1@"},
	}

	for _, tt := range tests {
		if got := tt.in.DisplayName(); got != tt.want {
			t.Fatalf("DisplayName(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventDescription(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{}, ""},
		{Event{Date: "1901"}, "1901"},
		{Event{Place: "Missouri"}, "Missouri"},
		{Event{Date: "14 Feb 1901", Place: "Marion County, Missouri"}, "14 Feb 1901, Marion County, Missouri"},
	}

	for _, tt := range tests {
		if got := tt.ev.Description(); got != tt.want {
			t.Fatalf("Description(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
