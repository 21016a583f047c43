package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	// cellPadding is the horizontal padding CellStyle adds to each cell.
	cellPadding = 2
	// minColumnWidth keeps squeezed columns readable.
	minColumnWidth = 6
)

// RenderTable renders rows under headers as a bordered table. When width is
// positive, cells are truncated so the table fits in width columns.
func RenderTable(headers []string, rows [][]string, width int, styles *StyleConfig) string {
	if styles == nil {
		styles = DefaultStyles()
	}

	if width > 0 {
		rows = fitRows(headers, rows, width)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.BorderStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle()
			}
			return styles.CellStyle()
		})

	return t.Render()
}

// fitRows truncates cells so the rendered table is at most width wide.
func fitRows(headers []string, rows [][]string, width int) [][]string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = VisualWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && VisualWidth(cell) > widths[i] {
				widths[i] = VisualWidth(cell)
			}
		}
	}

	// One border rune between and around columns, plus cell padding.
	overhead := len(headers) + 1 + cellPadding*len(headers)
	fitted := FitColumns(widths, width-overhead, minColumnWidth)

	out := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i < len(fitted) {
				cell = Truncate(cell, fitted[i], true)
			}
			cells[i] = cell
		}
		out[r] = cells
	}

	return out
}
