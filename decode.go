package veximoji

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Decoded reports which registry identifier composes a flag string.
type Decoded struct {
	// Kind is the flag's category.
	Kind FlagKind

	// Code is the identifier that composes the flag: a country or
	// subdivision code for geographic kinds, a CulturalTerm token for
	// KindCultural.
	Code string
}

// Decode identifies the flag in s. It inverts composition exactly: for
// every identifier this package accepts, decoding the composed string
// returns that identifier, and any string that is not exactly one
// supported flag yields no result.
//
// A Regional Indicator pair decodes as KindCountry when the pair's letters
// are in the Composer's RegionSource, and as KindInternational when they
// are a reservation code (EU and UN are groupings, not countries, in the
// CLDR data).
func (c *Composer) Decode(s string) (Decoded, bool) {
	// A flag is a single extended grapheme cluster; anything longer is
	// several glyphs and anything shorter is empty.
	if s == "" || uniseg.GraphemeClusterCount(s) != 1 {
		return Decoded{}, false
	}

	runes := []rune(s)

	// Regional Indicator pair: country or exceptional reservation.
	if len(runes) == 2 && IsRegionalIndicator(runes[0]) && IsRegionalIndicator(runes[1]) {
		code := decodeRegionalPair(runes[0], runes[1])
		if c.source.Contains(code) {
			return Decoded{Kind: KindCountry, Code: code}, true
		}
		if _, ok := internationalScalars[code]; ok {
			return Decoded{Kind: KindInternational, Code: code}, true
		}
		return Decoded{}, false
	}

	// Tag sequence: black flag, tag characters, cancel tag. A bare black
	// flag has no tag character at index 1 and falls through to the
	// cultural match below.
	if len(runes) >= 3 && runes[0] == blackFlag && IsTagCharacter(runes[1]) {
		code, ok := decodeTagSequence(runes)
		if !ok {
			return Decoded{}, false
		}
		if _, ok := subdivisionScalars[code]; ok {
			return Decoded{Kind: KindSubdivision, Code: code}, true
		}
		return Decoded{}, false
	}

	// Cultural flags have no structure to exploit: match the whole string
	// against each stored sequence.
	for _, term := range culturalTerms {
		if string(culturalScalars[term]) == s {
			return Decoded{Kind: KindCultural, Code: string(term)}, true
		}
	}

	return Decoded{}, false
}

// IsFlag reports whether s is exactly one flag this package can compose.
func (c *Composer) IsFlag(s string) bool {
	_, ok := c.Decode(s)
	return ok
}

// decodeRegionalPair converts two Regional Indicator scalars back to
// their ASCII letters. Both runes must already be in the block.
func decodeRegionalPair(a, b rune) string {
	return string([]rune{'A' + (a - 0x1F1E6), 'A' + (b - 0x1F1E6)})
}

// decodeTagSequence converts a black-flag tag sequence back to an
// "XX-YYY" subdivision code. The sequence must be black flag, exactly
// five letter tags, cancel tag; anything else is malformed.
func decodeTagSequence(runes []rune) (string, bool) {
	if runes[0] != blackFlag || !IsCancelTag(runes[len(runes)-1]) {
		return "", false
	}
	letters := make([]rune, 0, len(runes)-2)
	for _, r := range runes[1 : len(runes)-1] {
		if !IsTagCharacter(r) {
			return "", false
		}
		c := r - tagOffset
		if c < 'a' || c > 'z' {
			return "", false
		}
		letters = append(letters, c-('a'-'A'))
	}
	if len(letters) != 5 {
		return "", false
	}
	return string(letters[:2]) + "-" + string(letters[2:]), true
}

// Width returns the terminal cell width of s, as a terminal consumer
// (including the bundled CLI) should reserve for it. Composed flags
// occupy two cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Decode identifies the flag in s using the default Composer.
func Decode(s string) (Decoded, bool) { return defaultComposer.Decode(s) }

// IsFlag reports whether s is exactly one flag, using the default Composer.
func IsFlag(s string) bool { return defaultComposer.IsFlag(s) }
