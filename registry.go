package veximoji

import (
	"maps"
	"slices"
)

// CulturalTerm names a non-geographic flag. Terms are fixed lowercase
// tokens matched exactly: unlike country or subdivision codes, a cultural
// term is never case-folded before lookup.
type CulturalTerm string

const (
	// TermPride is the rainbow flag (U+1F3F3 U+FE0F U+200D U+1F308).
	TermPride CulturalTerm = "pride"

	// TermTrans is the transgender flag (white flag ZWJ transgender symbol).
	TermTrans CulturalTerm = "trans"

	// TermPirate is the pirate flag (black flag ZWJ skull and crossbones).
	TermPirate CulturalTerm = "pirate"

	// TermWhite is the plain white flag (U+1F3F3 U+FE0F).
	TermWhite CulturalTerm = "white"

	// TermBlack is the plain black flag (U+1F3F4).
	TermBlack CulturalTerm = "black"

	// TermCrossed is the crossed flags emoji (U+1F38C).
	TermCrossed CulturalTerm = "crossed"

	// TermTriangular is the triangular flag on post (U+1F6A9).
	TermTriangular CulturalTerm = "triangular"

	// TermRacing is the chequered racing flag (U+1F3C1).
	TermRacing CulturalTerm = "racing"
)

// subdivisionScalars maps each supported ISO 3166-2 code to its tag
// sequence: black flag, one tag character per lowercase letter of the
// code (hyphen dropped), cancel tag. Always 7 scalars for the GB codes.
var subdivisionScalars = map[string][]rune{
	"GB-ENG": {blackFlag, 0xE0067, 0xE0062, 0xE0065, 0xE006E, 0xE0067, cancelTag},
	"GB-SCT": {blackFlag, 0xE0067, 0xE0062, 0xE0073, 0xE0063, 0xE0074, cancelTag},
	"GB-WLS": {blackFlag, 0xE0067, 0xE0062, 0xE0077, 0xE006C, 0xE0073, cancelTag},
}

// internationalScalars maps each exceptional reservation to its Regional
// Indicator pair. These codes are reserved by ISO outside the normal
// country allocation, so they are not members of any RegionSource.
var internationalScalars = map[string][]rune{
	"EU": {0x1F1EA, 0x1F1FA},
	"UN": {0x1F1FA, 0x1F1F3},
}

// culturalScalars maps each term to its scalar sequence, 1 to 5 scalars.
var culturalScalars = map[CulturalTerm][]rune{
	TermPride:      {whiteFlag, emojiVS, zwj, 0x1F308},
	TermTrans:      {whiteFlag, emojiVS, zwj, 0x26A7, emojiVS},
	TermPirate:     {blackFlag, zwj, 0x2620, emojiVS},
	TermWhite:      {whiteFlag, emojiVS},
	TermBlack:      {blackFlag},
	TermCrossed:    {0x1F38C},
	TermTriangular: {0x1F6A9},
	TermRacing:     {0x1F3C1},
}

// Sorted identifier lists, fixed at init. The tables above never change
// after package initialization, so these slices are safe to hand out by
// copy for the lifetime of the process.
var (
	subdivisionCodes   = slices.Sorted(maps.Keys(subdivisionScalars))
	internationalCodes = slices.Sorted(maps.Keys(internationalScalars))
	culturalTerms      = slices.Sorted(maps.Keys(culturalScalars))
)

// lookupScalars returns the precomputed scalar sequence for an identifier
// of the given kind. The second return is false for identifiers outside
// the closed set; that is a normal outcome, not a fault. KindCountry has
// no table (its sequence is computed, see composeCountry) and always
// returns false here.
func lookupScalars(kind FlagKind, id string) ([]rune, bool) {
	switch kind {
	case KindSubdivision:
		s, ok := subdivisionScalars[id]
		return s, ok
	case KindInternational:
		s, ok := internationalScalars[id]
		return s, ok
	case KindCultural:
		s, ok := culturalScalars[CulturalTerm(id)]
		return s, ok
	default:
		return nil, false
	}
}
