package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/cuneify/internal/sign"
)

var tableHeader = []string{"Value", "Form", "Glyph", "Lang"}

// renderTable lays out signs in aligned columns. Cuneiform glyphs are
// double width in most terminals, so widths are measured in cells.
func renderTable(signs []sign.Sign) string {
	rows := make([][]string, 0, len(signs))
	for _, s := range signs {
		lang := s.Language
		if lang == "" {
			lang = "-"
		}
		rows = append(rows, []string{s.Value, s.Form, s.Glyph, lang})
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(formatRow(tableHeader, widths)))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths))
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
