package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/thruflo/primespiral/internal/spiral"
)

// Numbers writes the ranks of a grid as a number spiral, one line per row.
// Rows are left-aligned like the grid itself, so partial rings are ragged.
// With markPrimes, prime ranks are printed as "  *".
func Numbers[T any](w io.Writer, grid spiral.Grid[T], markPrimes bool) error {
	for _, row := range grid {
		fields := make([]string, len(row))
		for i, item := range row {
			if markPrimes && item.IsPrime {
				fields[i] = "  *"
				continue
			}
			fields[i] = fmt.Sprintf("%3d", item.Rank)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
