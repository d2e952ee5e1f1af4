package veximoji

// Scalar constants for the sequence shapes this package composes.
const (
	// regionalIndicatorOffset maps ASCII 'A'..'Z' into the Regional
	// Indicator Symbol block: 'A' (65) + 127397 = U+1F1E6.
	regionalIndicatorOffset = 127397

	// blackFlag (U+1F3F4) is both the TermBlack flag and the base of
	// every subdivision tag sequence.
	blackFlag = 0x1F3F4

	// whiteFlag (U+1F3F3) is the base of the white, pride, and trans flags.
	whiteFlag = 0x1F3F3

	// emojiVS (U+FE0F) forces emoji presentation.
	emojiVS = 0xFE0F

	// zwj (U+200D) joins emoji into composite sequences.
	zwj = 0x200D

	// cancelTag (U+E007F) terminates a tag sequence.
	cancelTag = 0xE007F

	// tagOffset shifts ASCII into the tag character block:
	// 'a' (0x61) + 0xE0000 = U+E0061.
	tagOffset = 0xE0000
)

// IsRegionalIndicator returns true if the rune is a Regional Indicator (A-Z).
// Two regional indicators form a country flag emoji
// (e.g., U+1F1FA U+1F1F8 = US flag).
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsTagCharacter returns true for emoji tag characters.
// Tags U+E0020-U+E007E encode the letters of subdivision flag sequences.
func IsTagCharacter(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// IsCancelTag returns true for the cancel tag character (U+E007F).
// This terminates subdivision flag sequences.
func IsCancelTag(r rune) bool {
	return r == cancelTag
}
