package veximoji

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// RegionSource supplies the ISO 3166-1 alpha-2 country codes a Composer
// validates against. It abstracts the host platform's locale data so a
// consumer can pin an exact code list (see StaticSource) without touching
// composition logic.
//
// Implementations must be safe for concurrent use and must treat the code
// set as immutable for the process lifetime.
type RegionSource interface {
	// Contains reports whether code names a country recognized by the
	// source. Matching is case-insensitive.
	Contains(code string) bool

	// Codes returns all country codes, uppercase and sorted.
	Codes() []string
}

// CLDRSource is the default RegionSource, backed by the CLDR region data
// bundled with golang.org/x/text. A code is a member when it parses as a
// region, is classified as a country, is its own canonical form, and is
// neither an exceptional reservation nor a dissolved state: this excludes
// groupings (EU, 419), reservations (UN), deprecated aliases (UK, FX),
// dissolved states (SU, AN), and the user-assigned range.
//
// CLDR tracks ISO 3166-1 as it is revised, so the exact set depends on the
// x/text version compiled in. It may differ marginally from any one
// operating system vendor's list.
//
// The zero value is ready to use.
type CLDRSource struct {
	once  sync.Once
	codes []string
}

// dissolvedRegions are deprecated ISO 3166-1 codes whose territory split
// across several successors. CLDR keeps them parseable and typed as
// countries because no single canonical replacement exists, so the
// canonical-form check below does not catch them.
var dissolvedRegions = map[string]struct{}{
	"AN": {}, // Netherlands Antilles
	"CS": {}, // Serbia and Montenegro
	"NT": {}, // Neutral Zone
	"SU": {}, // Soviet Union
	"YU": {}, // Yugoslavia
}

// Contains reports whether code is a recognized country code.
func (s *CLDRSource) Contains(code string) bool {
	if !isTwoLetters(code) {
		return false
	}
	code = strings.ToUpper(code)
	// UN parses as a country in CLDR, but it is an exceptional
	// reservation and belongs to KindInternational.
	if _, reserved := internationalScalars[code]; reserved {
		return false
	}
	if _, gone := dissolvedRegions[code]; gone {
		return false
	}
	r, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	// The Canonicalize comparison drops single-successor aliases:
	// ParseRegion("UK") reports a country whose String() is still "UK",
	// and only its canonical form reveals the replacement (GB).
	return r.IsCountry() && r.Canonicalize() == r && r.String() == code
}

// Codes returns all recognized country codes, sorted. The scan over the
// two-letter space runs once and is cached; the returned slice is a copy.
func (s *CLDRSource) Codes() []string {
	s.once.Do(func() {
		code := make([]byte, 2)
		for a := byte('A'); a <= 'Z'; a++ {
			for b := byte('A'); b <= 'Z'; b++ {
				code[0], code[1] = a, b
				if s.Contains(string(code)) {
					s.codes = append(s.codes, string(code))
				}
			}
		}
		Logger().Debug("enumerated CLDR region codes", "count", len(s.codes))
	})
	return slices.Clone(s.codes)
}

// StaticSource is a RegionSource over a fixed, caller-supplied code list.
// Use it to pin the country set independently of the CLDR data compiled
// into the binary, or to stub the region list in tests.
type StaticSource struct {
	set   map[string]struct{}
	codes []string
}

// NewStaticSource builds a StaticSource from codes. Entries are
// uppercased, deduplicated, and sorted; entries that are not two ASCII
// letters are dropped.
func NewStaticSource(codes []string) *StaticSource {
	s := &StaticSource{set: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		if !isTwoLetters(c) {
			continue
		}
		c = strings.ToUpper(c)
		if _, dup := s.set[c]; dup {
			continue
		}
		s.set[c] = struct{}{}
		s.codes = append(s.codes, c)
	}
	slices.Sort(s.codes)
	return s
}

// Contains reports whether code is in the pinned set.
func (s *StaticSource) Contains(code string) bool {
	if !isTwoLetters(code) {
		return false
	}
	_, ok := s.set[strings.ToUpper(code)]
	return ok
}

// Codes returns the pinned codes, sorted. The returned slice is a copy.
func (s *StaticSource) Codes() []string {
	return slices.Clone(s.codes)
}

// isTwoLetters reports whether s is exactly two ASCII letters.
func isTwoLetters(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := s[i] | 0x20 // fold to lowercase
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
