// Package translit handles the ASCII spelling of cuneiform transliterations
// and the clean-up of raw tokens before they are looked up.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// asciiPairs is the ORACC comma-second table, in application order.
// See http://oracc.museum.upenn.edu/doc/help/visitingoracc/unicode/index.html
var asciiPairs = []string{
	"š", "c,", "Š", "c,",
	"ṣ", "s,", "Ṣ", "S,",
	"ṭ", "t,", "Ṭ", "T,",
	"ḫ", "h,", "Ḫ", "H,",
	"ŋ", "j,", "Ŋ", "J,",
	"×", "X,",
	"ʾ", "),", "ʿ", "(,",
	"₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4",
	"₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9",
	"ₓ", "x",
	"⸢", "[,", "⸣", "],", "⸤", "", "⸥", "",
	"ʳ", ",r",
}

// No source string is a prefix of another and every replacement is ASCII,
// so one pass of the replacer equals applying the pairs one after another.
var asciifier = strings.NewReplacer(asciiPairs...)

// Normalize converts the diacritics and subscripts of a transliteration to
// their ASCII digraphs. Characters outside the table pass through unchanged.
func Normalize(s string) string {
	return asciifier.Replace(s)
}

// commaBases are the characters whose trailing comma is dropped when
// building the comma-free lookup keys.
const commaBases = "cCtThHjJX()[]"

// CollapseCommas removes the comma that follows any of the comma-second base
// characters, e.g. "c,arru" becomes "carru".
func CollapseCommas(s string) string {
	for _, b := range commaBases {
		s = strings.ReplaceAll(s, string(b)+",", string(b))
	}
	return s
}

// SwapCase returns s with upper case letters lowered and lower case letters
// raised. Caseless characters are kept.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

const (
	// markers are scribal annotations that may trail a reading.
	markers = "!?#*"
	// delimiters wrap damaged or restored readings.
	delimiters = `[]\/()`
	digits     = "0123456789"
)

// Clean strips a trailing annotation marker, surrounding whitespace and
// bracket or slash delimiters from a token. The result may be empty.
func Clean(tok string) string {
	tok = strings.TrimSpace(dropMarker(tok))
	return strings.Trim(tok, delimiters)
}

// CleanPattern is Clean for candidate searches: leading and trailing ASCII
// digits are trimmed along with the delimiters, so "lu2" searches as "lu".
func CleanPattern(tok string) string {
	tok = strings.TrimSpace(dropMarker(tok))
	return strings.Trim(tok, delimiters+digits)
}

func dropMarker(tok string) string {
	if utf8.RuneCountInString(tok) > 1 && strings.ContainsRune(markers, lastRune(tok)) {
		_, size := utf8.DecodeLastRuneInString(tok)
		return tok[:len(tok)-size]
	}
	return tok
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
