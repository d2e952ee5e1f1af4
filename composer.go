package veximoji

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ComposerOption configures a Composer during creation.
//
// Example:
//
//	// Default CLDR-backed country data
//	c := veximoji.New()
//
//	// Pinned country list (dependency injection)
//	c := veximoji.New(veximoji.WithRegionSource(veximoji.NewStaticSource(codes)))
type ComposerOption func(*composerOptions)

// composerOptions holds optional configuration for Composer creation.
type composerOptions struct {
	source RegionSource
}

// defaultComposerOptions returns the default composer options.
func defaultComposerOptions() composerOptions {
	return composerOptions{
		source: nil, // Will be set to a CLDRSource if nil
	}
}

// WithRegionSource sets the country-code source for the Composer.
// Use this to substitute a bundled static table (NewStaticSource) or a
// test stub for the default CLDR data.
func WithRegionSource(src RegionSource) ComposerOption {
	return func(o *composerOptions) {
		o.source = src
	}
}

// Composer validates flag identifiers and composes their emoji strings.
// Aside from its RegionSource it holds no state: every method is a pure
// function of its input, safe for unsynchronized concurrent use.
type Composer struct {
	source RegionSource
}

// New creates a Composer. With no options it validates country codes
// against the bundled CLDR data.
func New(opts ...ComposerOption) *Composer {
	o := defaultComposerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = &CLDRSource{}
	}
	return &Composer{source: o.source}
}

// Country composes the flag for an ISO 3166-1 alpha-2 country code.
// Matching is case-insensitive. The result pairs one Regional Indicator
// scalar per letter; ok is false for unknown, malformed, or empty codes.
func (c *Composer) Country(code string) (string, bool) {
	if !c.ValidCountry(code) {
		return "", false
	}
	return composeCountry(strings.ToUpper(code))
}

// Subdivision composes the flag for an ISO 3166-2 subdivision code, e.g.
// "GB-SCT". Matching is case-insensitive. ok is false for codes outside
// the supported set.
func (c *Composer) Subdivision(code string) (string, bool) {
	return composeStored(KindSubdivision, strings.ToUpper(code))
}

// International composes the flag for an exceptional reservation code
// ("EU" or "UN"). Matching is case-insensitive.
func (c *Composer) International(code string) (string, bool) {
	return composeStored(KindInternational, strings.ToUpper(code))
}

// Cultural composes the flag for a named cultural term. Terms are matched
// exactly: Cultural("PRIDE") is not TermPride and yields no result.
func (c *Composer) Cultural(term CulturalTerm) (string, bool) {
	return composeStored(KindCultural, string(term))
}

// Flag composes a flag from an unqualified identifier, trying each kind
// in priority order: country, subdivision, international, cultural. The
// first kind that accepts the query wins; ok is false when none do.
func (c *Composer) Flag(query string) (string, bool) {
	flag, _, ok := c.Lookup(query)
	return flag, ok
}

// Lookup is Flag with the winning kind reported, for consumers that need
// to know which category resolved the query (the HTTP binding labels its
// metrics with it). It is the one copy of the dispatch order; Flag
// delegates here. kind is meaningful only when ok is true.
func (c *Composer) Lookup(query string) (flag string, kind FlagKind, ok bool) {
	if s, ok := c.Country(query); ok {
		return s, KindCountry, true
	}
	if s, ok := c.Subdivision(query); ok {
		return s, KindSubdivision, true
	}
	if s, ok := c.International(query); ok {
		return s, KindInternational, true
	}
	if s, ok := c.Cultural(CulturalTerm(query)); ok {
		return s, KindCultural, true
	}
	return "", 0, false
}

// ValidCountry reports whether code is a recognized country code.
func (c *Composer) ValidCountry(code string) bool {
	return c.source.Contains(code)
}

// ValidSubdivision reports whether code is a supported subdivision code.
func (c *Composer) ValidSubdivision(code string) bool {
	_, ok := subdivisionScalars[strings.ToUpper(code)]
	return ok
}

// ValidInternational reports whether code is a supported reservation code.
func (c *Composer) ValidInternational(code string) bool {
	_, ok := internationalScalars[strings.ToUpper(code)]
	return ok
}

// ValidCulturalTerm reports whether term is a supported cultural term.
func (c *Composer) ValidCulturalTerm(term CulturalTerm) bool {
	_, ok := culturalScalars[term]
	return ok
}

// CountryCodes returns all country codes recognized by the Composer's
// RegionSource, uppercase and sorted.
func (c *Composer) CountryCodes() []string {
	return c.source.Codes()
}

// SubdivisionCodes returns the supported subdivision codes, sorted.
func (c *Composer) SubdivisionCodes() []string {
	return slices.Clone(subdivisionCodes)
}

// InternationalCodes returns the supported reservation codes, sorted.
func (c *Composer) InternationalCodes() []string {
	return slices.Clone(internationalCodes)
}

// CulturalTerms returns the supported cultural terms, sorted.
func (c *Composer) CulturalTerms() []CulturalTerm {
	return slices.Clone(culturalTerms)
}

// composeCountry builds a Regional Indicator pair from an uppercase
// two-letter code. Composition is strictly gated on exactly two ASCII
// letters so that internal misuse can never emit a malformed multi-scalar
// sequence; any out-of-range scalar aborts to no result. With input that
// passed validation neither guard fires.
func composeCountry(code string) (string, bool) {
	if !isTwoLetters(code) {
		return "", false
	}
	out := make([]rune, 0, 2)
	for _, r := range code {
		scalar := r + regionalIndicatorOffset
		if !utf8.ValidRune(scalar) || !IsRegionalIndicator(scalar) {
			return "", false
		}
		out = append(out, scalar)
	}
	return string(out), true
}

// composeStored concatenates the registry's scalar sequence for a stored
// kind, in order, with no reordering or normalization. An absent or empty
// sequence, or a scalar outside the valid Unicode range, yields no
// result. The registry invariant makes the last two cases unreachable for
// the shipped tables; the guards stay because table additions are where
// the invariant is most easily broken.
func composeStored(kind FlagKind, id string) (string, bool) {
	scalars, ok := lookupScalars(kind, id)
	if !ok || len(scalars) == 0 {
		return "", false
	}
	for _, r := range scalars {
		if !utf8.ValidRune(r) {
			return "", false
		}
	}
	return string(scalars), true
}

// defaultComposer backs the package-level convenience functions.
var defaultComposer = New()

// Country composes a country flag using the default Composer.
func Country(code string) (string, bool) { return defaultComposer.Country(code) }

// Subdivision composes a subdivision flag using the default Composer.
func Subdivision(code string) (string, bool) { return defaultComposer.Subdivision(code) }

// International composes a reservation flag using the default Composer.
func International(code string) (string, bool) { return defaultComposer.International(code) }

// Cultural composes a cultural flag using the default Composer.
func Cultural(term CulturalTerm) (string, bool) { return defaultComposer.Cultural(term) }

// Flag composes a flag from an unqualified identifier using the default
// Composer. See [Composer.Flag] for the dispatch order.
func Flag(query string) (string, bool) { return defaultComposer.Flag(query) }

// Lookup composes a flag and reports its kind using the default Composer.
func Lookup(query string) (string, FlagKind, bool) { return defaultComposer.Lookup(query) }

// ValidCountry reports whether code is a recognized country code.
func ValidCountry(code string) bool { return defaultComposer.ValidCountry(code) }

// ValidSubdivision reports whether code is a supported subdivision code.
func ValidSubdivision(code string) bool { return defaultComposer.ValidSubdivision(code) }

// ValidInternational reports whether code is a supported reservation code.
func ValidInternational(code string) bool { return defaultComposer.ValidInternational(code) }

// ValidCulturalTerm reports whether term is a supported cultural term.
func ValidCulturalTerm(term CulturalTerm) bool { return defaultComposer.ValidCulturalTerm(term) }

// CountryCodes lists the default Composer's country codes.
func CountryCodes() []string { return defaultComposer.CountryCodes() }

// SubdivisionCodes lists the supported subdivision codes.
func SubdivisionCodes() []string { return defaultComposer.SubdivisionCodes() }

// InternationalCodes lists the supported reservation codes.
func InternationalCodes() []string { return defaultComposer.InternationalCodes() }

// CulturalTerms lists the supported cultural terms.
func CulturalTerms() []CulturalTerm { return defaultComposer.CulturalTerms() }
