package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/cuneify/internal/cuneify"
	"github.com/f3rmion/cuneify/internal/sign"
)

// writeReport prints a candidate report, one block per token.
func writeReport(w io.Writer, report []cuneify.LineCandidates) error {
	var b strings.Builder
	for _, line := range report {
		if len(line.Tokens) == 0 {
			continue
		}
		fmt.Fprintf(&b, "line %d\n", line.Line)
		for _, c := range line.Tokens {
			writeCandidates(&b, c)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCandidates(b *strings.Builder, c cuneify.Candidates) {
	fmt.Fprintf(b, "  %s\n", c.Token)
	writeSigns(b, c.Signs)
}

// writeSigns prints one aligned row per sign: value, form, glyph, language.
func writeSigns(b *strings.Builder, signs []sign.Sign) {
	if len(signs) == 0 {
		b.WriteString("    (no candidates)\n")
		return
	}

	valueWidth, formWidth := 0, 0
	for _, s := range signs {
		valueWidth = max(valueWidth, runewidth.StringWidth(s.Value))
		formWidth = max(formWidth, runewidth.StringWidth(s.Form))
	}
	for _, s := range signs {
		line := fmt.Sprintf("    %s  %s  %s  %s",
			runewidth.FillRight(s.Value, valueWidth),
			runewidth.FillRight(s.Form, formWidth),
			s.Glyph,
			languageLabel(s))
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
}

func languageLabel(s sign.Sign) string {
	if s.Language == "" {
		return "-"
	}
	return s.Language
}

func printLanguages(w io.Writer) {
	fmt.Fprintln(w, "Available languages:")
	for _, l := range sign.Languages() {
		fmt.Fprintf(w, "  %-9s (%s)\n", l.Name, l.Code)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Leave --lang blank to disregard the language of a sign.")
}
