// Package veximoji converts identifying codes and named terms into emoji
// flag strings.
//
// # Overview
//
// Emoji flags are not single characters: a rendering engine composes them
// from sequences of Unicode scalars. Country flags pair two Regional
// Indicator Symbols, subdivision flags chain tag characters behind a black
// flag, and cultural flags (pride, pirate, and so on) are fixed ZWJ or
// variation-selector sequences. veximoji knows these rules so callers can
// pass ordinary strings instead of hand-encoding scalars.
//
// # Quick Start
//
//	import veximoji "github.com/roz0n/Veximoji"
//
//	flag, ok := veximoji.Country("US")        // 🇺🇸
//	flag, ok = veximoji.Subdivision("GB-SCT") // 🏴󠁧󠁢󠁳󠁣󠁴󠁿
//	flag, ok = veximoji.Cultural(veximoji.TermPride) // 🏳️‍🌈
//
//	// Dispatch across all kinds in priority order:
//	flag, ok = veximoji.Flag("GB-ENG")
//
// Every lookup returns (string, false) for unknown, malformed, or empty
// input. Bad input is an expected case, not an error: there are no error
// returns and no panics on the lookup path.
//
// # Flag Kinds
//
//   - [KindCountry]: ISO 3166-1 alpha-2 codes, validated against a
//     [RegionSource] and composed algorithmically from Regional Indicators.
//   - [KindSubdivision]: ISO 3166-2 codes with a precomputed tag-sequence
//     table (GB-ENG, GB-SCT, GB-WLS).
//   - [KindInternational]: exceptional reservations (EU, UN) with
//     precomputed Regional Indicator pairs.
//   - [KindCultural]: named non-geographic flags ([TermPride], [TermPirate],
//     ...) with precomputed scalar sequences.
//
// # Decoding
//
// [Decode] inverts composition: given an emoji string that is exactly one
// flag, it reports the kind and identifier that compose it. [IsFlag] is the
// boolean convenience.
//
// # Concurrency
//
// All registry data is immutable after package initialization. A [Composer]
// is a pure function of its inputs and is safe for concurrent use from any
// number of goroutines without coordination.
//
// # Unicode Emoji Specification
//
// Sequence shapes follow Unicode Technical Report #51:
// https://www.unicode.org/reports/tr51/
package veximoji

// Version information
const (
	// Version is the current version of the library
	Version = "1.2.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
