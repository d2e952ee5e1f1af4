package veximoji

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestCountry(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
		ok   bool
	}{
		{"US", "US", "\U0001F1FA\U0001F1F8", true},
		{"lowercase", "us", "\U0001F1FA\U0001F1F8", true},
		{"mixed case", "gB", "\U0001F1EC\U0001F1E7", true},
		{"JP", "JP", "\U0001F1EF\U0001F1F5", true},
		{"EU is not a country", "EU", "", false},
		{"UN is not a country", "UN", "", false},
		{"UK alias does not compose", "UK", "", false},
		{"SU dissolved does not compose", "SU", "", false},
		{"unknown", "ZZ", "", false},
		{"too long", "USA", "", false},
		{"too short", "U", "", false},
		{"empty", "", "", false},
		{"digits", "12", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Country(tt.code)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Country(%q) = %q, %v, want %q, %v", tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSubdivision(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"England", "GB-ENG", true},
		{"Scotland", "GB-SCT", true},
		{"Wales", "GB-WLS", true},
		{"lowercase", "gb-eng", true},
		{"mixed case", "Gb-ScT", true},
		{"unsupported subdivision", "US-CA", false},
		{"no hyphen", "GBENG", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Subdivision(tt.code)
			if ok != tt.ok {
				t.Fatalf("Subdivision(%q) ok = %v, want %v", tt.code, ok, tt.ok)
			}
			if !ok {
				return
			}
			runes := []rune(got)
			if len(runes) != 7 {
				t.Errorf("Subdivision(%q) has %d scalars, want 7", tt.code, len(runes))
			}
		})
	}
}

func TestSubdivisionScotland(t *testing.T) {
	want := "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F"
	got, ok := Subdivision("GB-SCT")
	if !ok || got != want {
		t.Errorf("Subdivision(GB-SCT) = %+q, %v, want %+q, true", got, ok, want)
	}
}

func TestInternational(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
		ok   bool
	}{
		{"EU", "EU", "\U0001F1EA\U0001F1FA", true},
		{"UN", "UN", "\U0001F1FA\U0001F1F3", true},
		{"lowercase", "eu", "\U0001F1EA\U0001F1FA", true},
		{"country code", "US", "", false},
		{"unknown", "XX", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := International(tt.code)
			if ok != tt.ok || got != tt.want {
				t.Errorf("International(%q) = %q, %v, want %q, %v", tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCultural(t *testing.T) {
	for _, term := range CulturalTerms() {
		t.Run(string(term), func(t *testing.T) {
			got, ok := Cultural(term)
			if !ok || got == "" {
				t.Fatalf("Cultural(%q) = %q, %v, want non-empty, true", term, got, ok)
			}
		})
	}

	tests := []struct {
		name string
		term CulturalTerm
	}{
		{"uppercase is not folded", "PRIDE"},
		{"unknown", "checkers"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Cultural(tt.term); ok {
				t.Errorf("Cultural(%q) = %q, want no result", tt.term, got)
			}
		})
	}
}

func TestCulturalPride(t *testing.T) {
	got, ok := Cultural(TermPride)
	want := "\U0001F3F3️‍\U0001F308"
	if !ok || got != want {
		t.Errorf("Cultural(pride) = %+q, %v, want %+q, true", got, ok, want)
	}
}

func TestFlagDispatchOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		kind  FlagKind
		ok    bool
	}{
		{"country path", "US", KindCountry, true},
		{"subdivision path", "GB-ENG", KindSubdivision, true},
		{"international path", "UN", KindInternational, true},
		{"cultural path", "pirate", KindCultural, true},
		{"nothing", "zzzz-not-real", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind, ok := Lookup(tt.query)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			}
			if !ok {
				return
			}
			if kind != tt.kind {
				t.Errorf("Lookup(%q) kind = %v, want %v", tt.query, kind, tt.kind)
			}
			// The dispatch winner must agree with the kind's own composer.
			var want string
			switch tt.kind {
			case KindCountry:
				want, _ = Country(tt.query)
			case KindSubdivision:
				want, _ = Subdivision(tt.query)
			case KindInternational:
				want, _ = International(tt.query)
			case KindCultural:
				want, _ = Cultural(CulturalTerm(tt.query))
			}
			if got != want {
				t.Errorf("Lookup(%q) = %+q, want %+q via %v", tt.query, got, want, tt.kind)
			}
			// Flag must agree with Lookup; it delegates to it.
			if flagGot, flagOK := Flag(tt.query); flagOK != ok || flagGot != got {
				t.Errorf("Flag(%q) = %+q, %v, want %+q, %v", tt.query, flagGot, flagOK, got, ok)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	if !ValidCountry("US") || ValidCountry("EU") || ValidCountry("") {
		t.Error("ValidCountry misclassifies")
	}
	if !ValidSubdivision("gb-wls") || ValidSubdivision("GB-LDN") {
		t.Error("ValidSubdivision misclassifies")
	}
	if !ValidInternational("un") || ValidInternational("US") {
		t.Error("ValidInternational misclassifies")
	}
	if !ValidCulturalTerm(TermRacing) || ValidCulturalTerm("RACING") {
		t.Error("ValidCulturalTerm misclassifies")
	}
}

func TestComposerWithStaticSource(t *testing.T) {
	c := New(WithRegionSource(NewStaticSource([]string{"US", "FR"})))

	if _, ok := c.Country("US"); !ok {
		t.Error("pinned code US should compose")
	}
	if _, ok := c.Country("DE"); ok {
		t.Error("DE is outside the pinned set")
	}
	if got := c.CountryCodes(); len(got) != 2 {
		t.Errorf("CountryCodes() = %v, want [FR US]", got)
	}
	// The stored kinds are independent of the region source.
	if _, ok := c.Subdivision("GB-SCT"); !ok {
		t.Error("subdivision lookup should not depend on the region source")
	}
}

// composeCountry is strictly gated on two letters: bypassing validation
// with a longer or shorter string must not emit a partial sequence.
func TestComposeCountryGate(t *testing.T) {
	for _, code := range []string{"", "U", "USA", "U1", "1A", "US-"} {
		if got, ok := composeCountry(code); ok {
			t.Errorf("composeCountry(%q) = %+q, want no result", code, got)
		}
	}
}

// Spec properties quantified over the full country set.

func TestCountryCaseInsensitive(t *testing.T) {
	codes := CountryCodes()
	rapid.Check(t, func(rt *rapid.T) {
		code := rapid.SampledFrom(codes).Draw(rt, "code")

		upper, okU := Country(code)
		lower, okL := Country(strings.ToLower(code))
		if !okU || !okL {
			rt.Fatalf("Country(%q) did not compose for both cases", code)
		}
		if upper != lower {
			rt.Errorf("Country(%q): case variants differ: %+q vs %+q", code, upper, lower)
		}

		runes := []rune(upper)
		if len(runes) != 2 {
			rt.Fatalf("Country(%q) has %d scalars, want 2", code, len(runes))
		}
		for _, r := range runes {
			if !IsRegionalIndicator(r) {
				rt.Errorf("Country(%q): %U outside the Regional Indicator block", code, r)
			}
		}
	})
}

func TestCountryRejectsNonMembers(t *testing.T) {
	c := New()
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		if c.ValidCountry(s) {
			// rapid found an actual member; composing it must succeed.
			if _, ok := c.Country(s); !ok {
				rt.Errorf("valid code %q did not compose", s)
			}
			return
		}
		if got, ok := c.Country(s); ok {
			rt.Errorf("Country(%q) = %+q, want no result", s, got)
		}
	})
}

func TestCompositionIdempotent(t *testing.T) {
	queries := []string{"US", "de", "GB-ENG", "gb-sct", "EU", "un", "pride", "pirate", "racing"}
	rapid.Check(t, func(rt *rapid.T) {
		q := rapid.SampledFrom(queries).Draw(rt, "query")
		first, ok1 := Flag(q)
		second, ok2 := Flag(q)
		if !ok1 || !ok2 || first != second {
			rt.Errorf("Flag(%q) drifted: %+q/%v then %+q/%v", q, first, ok1, second, ok2)
		}
	})
}
