// Package render turns spiral grids and frame fills into output: HTML tables
// of image cells, or a plain-text number spiral.
package render

import (
	"fmt"

	"github.com/thruflo/primespiral/internal/spiral"
)

// PrimeCell controls how items at prime ranks are rendered.
type PrimeCell string

const (
	// PrimeCellSkip leaves prime-ranked items out of their row entirely.
	PrimeCellSkip PrimeCell = "skip"
	// PrimeCellBlank keeps the cell but leaves it empty.
	PrimeCellBlank PrimeCell = "blank"
)

// ParsePrimeCell validates a prime cell mode name.
func ParsePrimeCell(s string) (PrimeCell, error) {
	switch PrimeCell(s) {
	case PrimeCellSkip, PrimeCellBlank:
		return PrimeCell(s), nil
	}
	return "", fmt.Errorf("unknown prime cell mode %q (want %q or %q)", s, PrimeCellSkip, PrimeCellBlank)
}

// Cell is one table cell. An empty Src is a blank cell.
type Cell struct {
	Src string
}

// Table is a sequence of rows of cells.
type Table [][]Cell

// Cells returns the number of cells in the table.
func (t Table) Cells() int {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	return n
}

// SpiralTable converts a grid of image paths into table cells. Items at prime
// ranks are dropped or blanked according to mode.
func SpiralTable(grid spiral.Grid[string], mode PrimeCell) Table {
	table := make(Table, 0, len(grid))
	for _, row := range grid {
		cells := make([]Cell, 0, len(row))
		for _, item := range row {
			if !item.IsPrime {
				cells = append(cells, Cell{Src: item.Value})
				continue
			}
			if mode == PrimeCellBlank {
				cells = append(cells, Cell{})
			}
		}
		table = append(table, cells)
	}
	return table
}
