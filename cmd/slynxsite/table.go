package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatColumns lays rows out in space separated columns sized to their widest
// cell. Columns listed in numeric are right aligned.
func formatColumns(headers []string, rows [][]string, numeric map[int]bool) []string {
	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, joinCells(headers, widths, numeric))
	}
	for _, row := range rows {
		lines = append(lines, joinCells(row, widths, numeric))
	}
	return lines
}

func joinCells(row []string, widths []int, numeric map[int]bool) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if numeric[i] {
			cells[i] = runewidth.FillLeft(cell, w)
		} else {
			cells[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
