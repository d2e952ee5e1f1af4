package veximoji

import (
	"slices"
	"testing"
	"unicode/utf8"
)

// Every identifier a kind lists must resolve to a non-empty, valid scalar
// sequence. Table additions are the most likely way to break this, so the
// whole table surface is swept here.
func TestRegistryResolvability(t *testing.T) {
	for _, kind := range []FlagKind{KindSubdivision, KindInternational} {
		var ids []string
		if kind == KindSubdivision {
			ids = subdivisionCodes
		} else {
			ids = internationalCodes
		}
		for _, id := range ids {
			scalars, ok := lookupScalars(kind, id)
			if !ok || len(scalars) == 0 {
				t.Errorf("%v %q: no scalar sequence", kind, id)
				continue
			}
			for _, r := range scalars {
				if !utf8.ValidRune(r) {
					t.Errorf("%v %q: invalid scalar %U", kind, id, r)
				}
			}
		}
	}

	for _, term := range culturalTerms {
		scalars, ok := lookupScalars(KindCultural, string(term))
		if !ok || len(scalars) == 0 {
			t.Errorf("cultural %q: no scalar sequence", term)
			continue
		}
		if len(scalars) > 5 {
			t.Errorf("cultural %q: %d scalars, want at most 5", term, len(scalars))
		}
	}
}

func TestSubdivisionSequenceShape(t *testing.T) {
	for code, scalars := range subdivisionScalars {
		if len(scalars) != 7 {
			t.Errorf("%q: %d scalars, want 7", code, len(scalars))
			continue
		}
		if scalars[0] != blackFlag {
			t.Errorf("%q: base %U, want black flag", code, scalars[0])
		}
		if !IsCancelTag(scalars[6]) {
			t.Errorf("%q: terminator %U, want cancel tag", code, scalars[6])
		}
		for _, r := range scalars[1:6] {
			if !IsTagCharacter(r) {
				t.Errorf("%q: %U is not a tag character", code, r)
			}
		}
	}
}

func TestInternationalSequenceShape(t *testing.T) {
	for code, scalars := range internationalScalars {
		if len(scalars) != 2 {
			t.Errorf("%q: %d scalars, want 2", code, len(scalars))
			continue
		}
		for _, r := range scalars {
			if !IsRegionalIndicator(r) {
				t.Errorf("%q: %U is not a regional indicator", code, r)
			}
		}
		// The pair must spell the code itself.
		if got := decodeRegionalPair(scalars[0], scalars[1]); got != code {
			t.Errorf("%q: pair spells %q", code, got)
		}
	}
}

func TestIdentifierListsSortedAndUnique(t *testing.T) {
	if !slices.IsSorted(subdivisionCodes) {
		t.Error("subdivision codes not sorted")
	}
	if !slices.IsSorted(internationalCodes) {
		t.Error("international codes not sorted")
	}
	if !slices.IsSorted(culturalTerms) {
		t.Error("cultural terms not sorted")
	}
	if len(slices.Compact(slices.Clone(subdivisionCodes))) != len(subdivisionCodes) {
		t.Error("subdivision codes contain duplicates")
	}
}

func TestLookupScalarsAbsent(t *testing.T) {
	tests := []struct {
		name string
		kind FlagKind
		id   string
	}{
		{"unknown subdivision", KindSubdivision, "US-CAL"},
		{"lowercase subdivision", KindSubdivision, "gb-eng"},
		{"unknown international", KindInternational, "XX"},
		{"unknown cultural", KindCultural, "checkers"},
		{"wrong-case cultural", KindCultural, "PRIDE"},
		{"country has no table", KindCountry, "US"},
		{"empty", KindSubdivision, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := lookupScalars(tt.kind, tt.id); ok {
				t.Errorf("lookupScalars(%v, %q) = ok, want absent", tt.kind, tt.id)
			}
		})
	}
}
