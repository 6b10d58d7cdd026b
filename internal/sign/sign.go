// Package sign holds the cuneiform sign inventory: the records compiled from
// the sign list, the tiered lookup views derived from them, and the stores
// they are persisted in.
package sign

import "errors"

var (
	// ErrInvalidLanguage is returned when a language filter is not one of
	// the supported codes.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrInventoryLoad wraps any failure to read or decode a sign inventory.
	ErrInventoryLoad = errors.New("loading sign inventory")

	// ErrInvalidSign marks a record without a reading or a usable glyph.
	ErrInvalidSign = errors.New("invalid sign")
)

// Sign is one reading of a cuneiform sign.
type Sign struct {
	Value    string `json:"value"`          // Reading as transliterated (e.g., "lugal", "ŠA₃")
	Form     string `json:"form"`           // Sign name or variant qualifier
	Glyph    string `json:"glyph"`          // Cuneiform Unicode character(s)
	Language string `json:"lang,omitempty"` // Language code, empty if unspecified
}

// placeholderGlyph is what the sign list uses for signs not yet in Unicode.
const placeholderGlyph = "X"

// HasGlyph reports whether the sign maps to a real Unicode glyph.
func (s Sign) HasGlyph() bool {
	return s.Glyph != "" && s.Glyph != placeholderGlyph
}
