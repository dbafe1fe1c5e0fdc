package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Align is the horizontal placement of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

const (
	maxCellWidth = 50
	cellTail     = "..."
	columnGap    = "  "
)

var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Table collects rows for plain column output. Cells may carry ANSI styling;
// widths are measured on the visible text.
type Table struct {
	headers []string
	align   []Align
	rows    [][]string
}

// NewTable returns a table with the given column headers, all left aligned.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, align: make([]Align, len(headers))}
}

// AlignRight right-aligns the given column indexes. Out of range indexes are
// ignored.
func (t *Table) AlignRight(columns ...int) *Table {
	for _, column := range columns {
		if column >= 0 && column < len(t.align) {
			t.align[column] = AlignRight
		}
	}
	return t
}

// AddRow appends one row. Cells past the last header are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len reports the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the header line followed by every row, each ending in a
// newline.
func (t *Table) String() string {
	lines := make([][]string, 0, len(t.rows)+1)
	lines = append(lines, t.clean(t.headers))
	for _, row := range t.rows {
		lines = append(lines, t.clean(row))
	}

	widths := make([]int, len(t.headers))
	for _, line := range lines {
		for i, cell := range line {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for _, line := range lines {
		for i, cell := range line {
			if i > 0 {
				b.WriteString(columnGap)
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			switch {
			case t.align[i] == AlignRight:
				b.WriteString(pad + cell)
			case i == len(line)-1:
				b.WriteString(cell)
			default:
				b.WriteString(cell + pad)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *Table) clean(row []string) []string {
	out := make([]string, len(t.headers))
	for i := range out {
		if i < len(row) {
			out[i] = TruncateCell(row[i])
		}
	}
	return out
}

// TruncateCell flattens line breaks and tabs and shortens cells wider than
// the column limit, keeping escape sequences intact.
func TruncateCell(value string) string {
	value = cellReplacer.Replace(value)
	if lipgloss.Width(value) <= maxCellWidth {
		return value
	}
	return truncate.StringWithTail(value, maxCellWidth, cellTail)
}
