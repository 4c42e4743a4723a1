// Package sheets locates, reads and navigates the uploaded schedule
// spreadsheets: filename-pattern search, sheet-candidate reading, and
// positional layout discovery inside the human-authored grids.
package sheets

import (
	"strconv"
	"strings"
)

// CellKind tags the dynamic type of a spreadsheet cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet cell. Cells arrive as heterogeneous values;
// the display string is what every downstream substring and regex check
// operates on.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// NewCell classifies a raw cell value from the sheet reader.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellBlank}
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Text: trimmed, Number: number}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

// String is the uniform display conversion used before classification.
func (c Cell) String() string {
	return c.Text
}

// Grid is an immutable rectangular 2-D view over one sheet.
type Grid struct {
	cells [][]Cell
	cols  int
}

// NewGrid builds a grid from raw sheet rows. Ragged rows are padded with
// blank cells so every (row, col) access inside bounds is valid.
func NewGrid(rows [][]string) Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			if j < len(row) {
				cells[i][j] = NewCell(row[j])
			} else {
				cells[i][j] = Cell{Kind: CellBlank}
			}
		}
	}

	return Grid{cells: cells, cols: cols}
}

// Rows returns the row count.
func (g Grid) Rows() int { return len(g.cells) }

// Cols returns the column count.
func (g Grid) Cols() int { return g.cols }

// Cell returns the cell at (row, col); out-of-bounds access yields a
// blank cell.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return Cell{Kind: CellBlank}
	}
	return g.cells[row][col]
}

// Value returns the display string at (row, col).
func (g Grid) Value(row, col int) string {
	return g.Cell(row, col).String()
}
