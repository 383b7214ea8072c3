package display

import (
	"strings"
	"unicode/utf8"
)

// Table renders an aligned text table with optional color support.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row to highlight. -1 = none.
	highlightRow int
	// highlightCell is a single {row, col} to highlight. row -1 = none.
	highlightCell [2]int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:       headers,
		highlightRow:  -1,
		highlightCell: [2]int{-1, -1},
	}
}

// AddRow appends a row of values.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow sets which row index (0-based) should be highlighted.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// SetHighlightCell highlights one cell, used for today in the month grid.
func (t *Table) SetHighlightCell(row, col int) {
	t.highlightCell = [2]int{row, col}
}

// Render produces the formatted table string with leading indent.
// Widths are measured in runes so Arabic month names line up.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("  " + Bold(formatRow(t.headers, widths, nil)) + "\n")

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sep, "  ")) + "\n")

	for i, row := range t.rows {
		var line string
		switch {
		case i == t.highlightRow:
			line = Accent(formatRow(row, widths, nil))
		case i == t.highlightCell[0]:
			col := t.highlightCell[1]
			line = formatRow(row, widths, func(j int, s string) string {
				if j == col {
					return Accent(s)
				}
				return s
			})
		default:
			line = formatRow(row, widths, nil)
		}
		sb.WriteString("  " + line + "\n")
	}

	return sb.String()
}

// formatRow pads each cell to its column width. decorate, when set, styles
// a padded cell without affecting alignment.
func formatRow(cells []string, widths []int, decorate func(int, string) string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded := cell + strings.Repeat(" ", max(0, w-utf8.RuneCountInString(cell)))
		if decorate != nil {
			padded = decorate(i, padded)
		}
		parts[i] = padded
	}
	return strings.Join(parts, "  ")
}
