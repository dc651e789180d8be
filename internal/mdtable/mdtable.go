// Package mdtable renders GitHub-flavored markdown tables with aligned
// columns. It backs both the validation reports and the --markdown_table
// artifact; nothing here affects pass/fail decisions.
package mdtable

import (
	"strings"
	"unicode/utf8"
)

// Render produces a markdown table with the given header and rows. Columns
// are padded to the widest cell so the raw text is readable without a
// markdown renderer. Short rows are padded with empty cells. Widths count
// runes, not bytes, so cells like "—" do not skew their column.
func Render(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths)

	b.WriteByte('|')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('|')
	}
	b.WriteByte('\n')

	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteByte('|')
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}
