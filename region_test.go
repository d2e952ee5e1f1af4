package veximoji

import (
	"slices"
	"testing"
)

func TestCLDRSourceContains(t *testing.T) {
	src := &CLDRSource{}
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"US", "US", true},
		{"lowercase", "us", true},
		{"mixed case", "Gb", true},
		{"DE", "DE", true},
		{"JP", "JP", true},
		{"EU grouping", "EU", false},
		{"UN reservation", "UN", false},
		{"un reservation lowercase", "un", false},
		{"UK alias of GB", "UK", false},
		{"FX alias of FR", "FX", false},
		{"SU dissolved", "SU", false},
		{"AN dissolved", "AN", false},
		{"CS dissolved", "CS", false},
		{"ZZ unknown", "ZZ", false},
		{"three letters", "USA", false},
		{"one letter", "U", false},
		{"digit", "U1", false},
		{"empty", "", false},
		{"unassigned", "XJ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := src.Contains(tt.code); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCLDRSourceCodes(t *testing.T) {
	src := &CLDRSource{}
	codes := src.Codes()

	if len(codes) < 200 {
		t.Fatalf("Codes() returned %d codes, want the full ISO 3166-1 set (~250)", len(codes))
	}
	if !slices.IsSorted(codes) {
		t.Error("Codes() not sorted")
	}
	for _, want := range []string{"AD", "DE", "GB", "JP", "US", "ZW"} {
		if !slices.Contains(codes, want) {
			t.Errorf("Codes() missing %q", want)
		}
	}
	// Enumeration and membership must agree.
	for _, c := range codes {
		if !src.Contains(c) {
			t.Errorf("listed code %q fails Contains", c)
		}
	}
	// Reservations, aliases, and dissolved states must never be listed,
	// or the country/international kind split breaks.
	for _, excluded := range []string{"EU", "UN", "UK", "FX", "SU", "AN", "CS", "NT", "YU"} {
		if slices.Contains(codes, excluded) {
			t.Errorf("Codes() lists %q, which is not a current country", excluded)
		}
	}
	// Returned slice is a copy: mutating it must not poison the cache.
	codes[0] = "!!"
	if got := src.Codes()[0]; got == "!!" {
		t.Error("Codes() returned the cached slice, want a copy")
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource([]string{"us", "GB", "us", "XX", "U1", "", "FRA", "de"})

	want := []string{"DE", "GB", "US", "XX"}
	if got := src.Codes(); !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}

	tests := []struct {
		code string
		want bool
	}{
		{"US", true},
		{"us", true},
		{"DE", true},
		{"XX", true}, // static sources may pin codes CLDR rejects
		{"FR", false},
		{"FRA", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := src.Contains(tt.code); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestStaticSourceEmpty(t *testing.T) {
	src := NewStaticSource(nil)
	if src.Contains("US") {
		t.Error("empty source should contain nothing")
	}
	if got := src.Codes(); len(got) != 0 {
		t.Errorf("Codes() = %v, want empty", got)
	}
}
