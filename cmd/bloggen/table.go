package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table renders fixed rows as aligned plain-text columns.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers, rows: make([][]string, 0)}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render writes the table to w. Colour is only used when w is a terminal.
func (t *table) render(w io.Writer) error {
	r := lipgloss.NewRenderer(w)

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// Width includes the horizontal padding.
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	sep := r.NewStyle().Faint(true)

	var sb strings.Builder
	writeRow := func(style lipgloss.Style, cells []string) {
		for i := range widths {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			sb.WriteString(style.Width(widths[i]).Render(text))
			if i < len(widths)-1 {
				sb.WriteString(sep.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(header, t.headers)
	sb.WriteString(sep.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range t.rows {
		writeRow(cell, row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
