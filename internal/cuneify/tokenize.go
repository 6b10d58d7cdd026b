// Package cuneify converts transliterated text into cuneiform signs.
//
// A Resolver maps each token to a single sign through the tiered inventory
// lookup. A Finder lists every sign a token could stand for. The Converter
// drives both over whole texts, line by line.
package cuneify

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r splits sign readings: any Unicode space,
// hyphen, square bracket or slash.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`-[]\/`, r)
}

// SplitLines splits text into lines. A trailing carriage return is dropped
// from each line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitTokens splits one line on whitespace, hyphens, brackets and slashes.
// Empty tokens are discarded.
func SplitTokens(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

// Tokenize splits text into lines of tokens, keeping one entry per line.
func Tokenize(text string) [][]string {
	lines := SplitLines(text)
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = SplitTokens(line)
	}
	return out
}
