package model

import "strings"

// Cell is a table cell holding one or more paragraphs.
type Cell struct {
	Paragraphs []Para `json:"paragraphs"`
}

// Text returns the cell paragraphs' text joined by newlines.
func (c Cell) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// DocTable is a table as rows of cells. Rows may differ in length when the
// source table merges cells; no padding is applied.
type DocTable struct {
	Rows [][]Cell `json:"rows"`
}

// ToPlain flattens the table into a matrix of cell texts.
func (t DocTable) ToPlain() [][]string {
	plain := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.Text()
		}
		plain[i] = cells
	}
	return plain
}

// RowCount returns the number of rows.
func (t DocTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the length of the longest row.
func (t DocTable) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}
