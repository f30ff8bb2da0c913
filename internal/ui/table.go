package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. A zero Width sizes the column to its
// widest cell, capped at MaxWidth when that is set.
type Column struct {
	Title    string
	Width    int
	MaxWidth int
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled table.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // selected row index (-1 = none)
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// widths resolves the rendered width of every column.
func (t *Table) widths() []int {
	out := make([]int, len(t.Columns))
	for j, col := range t.Columns {
		if col.Width > 0 {
			out[j] = col.Width
			continue
		}
		w := utf8.RuneCountInString(col.Title)
		for _, row := range t.Rows {
			if j < len(row) {
				w = max(w, utf8.RuneCountInString(row[j]))
			}
		}
		if col.MaxWidth > 0 {
			w = min(w, col.MaxWidth)
		}
		out[j] = w
	}
	return out
}

// Render returns the full table as a string.
// Cells are padded before styling to guarantee exact column widths; lipgloss
// Width with padding wraps content that does not fit.
func (t *Table) Render() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMeta)
	widths := t.widths()

	// Header row.
	var headers []string
	for j, col := range t.Columns {
		headers = append(headers, headerStyle.Render(pad(col.Title, widths[j])))
	}
	sb.WriteString(strings.Join(headers, " "))
	sb.WriteString("\n")

	// Divider.
	var divParts []string
	for j := range t.Columns {
		divParts = append(divParts, dimStyle.Render(strings.Repeat("-", widths[j])))
	}
	sb.WriteString(strings.Join(divParts, " "))
	sb.WriteString("\n")

	// Data rows.
	for i, row := range t.Rows {
		var cells []string
		for j := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			if i == t.SelIdx {
				cells = append(cells, StyleSelected.Render(pad(val, widths[j])))
			} else {
				cells = append(cells, cellStyle.Render(pad(val, widths[j])))
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// pad returns s left-aligned within exactly width runes, truncating if needed.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-n)
}

// KeyValueBlock renders a set of key-value pairs in a bordered box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fmt.Sprintf("%-20s", p[0]+":"))
		val := StyleValue.Render(p[1])
		sb.WriteString("  " + key + " " + val + "\n")
	}
	return StyleBorder.Render(sb.String())
}
