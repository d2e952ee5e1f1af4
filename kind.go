package veximoji

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FlagKind identifies the category a flag identifier belongs to.
// The set is fixed at compile time.
type FlagKind int

const (
	// KindCountry is an ISO 3166-1 alpha-2 country flag.
	// E.g., "US" -> U+1F1FA U+1F1F8.
	KindCountry FlagKind = iota

	// KindSubdivision is an ISO 3166-2 subdivision flag encoded as a
	// black-flag tag sequence. E.g., "GB-SCT" -> Scotland flag.
	KindSubdivision

	// KindInternational is an exceptional reservation outside the normal
	// ISO 3166-1 allocation, e.g. "EU" or "UN".
	KindInternational

	// KindCultural is a non-geographic flag named by a fixed term,
	// e.g. pride or pirate. The term set is tied to no ISO entity.
	KindCultural
)

// flagKindNames maps FlagKind to string names.
var flagKindNames = [...]string{
	KindCountry:       "Country",
	KindSubdivision:   "Subdivision",
	KindInternational: "International",
	KindCultural:      "Cultural",
}

// String returns the string name of the flag kind.
func (k FlagKind) String() string {
	if k >= 0 && int(k) < len(flagKindNames) {
		return flagKindNames[k]
	}
	return unknownStr
}

// Kinds returns all flag kinds in dispatch priority order.
// Flag tries each kind in this order and returns the first match.
func Kinds() []FlagKind {
	return []FlagKind{KindCountry, KindSubdivision, KindInternational, KindCultural}
}
