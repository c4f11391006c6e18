package render

import (
	"strings"

	"github.com/thruflo/primespiral/internal/primes"
)

// Glyph marks a frame cell that takes an item.
const Glyph = '#'

// FrameTable fills a frame layout with items in input order. Each line of the
// layout is one row; each Glyph consumes the next item whose rank is not prime,
// and every other character becomes a blank cell. Glyphs left over once the
// items run out are blank too.
func FrameTable(layout string, items []string) Table {
	isPrime := primes.Set(len(items))
	next := 0
	take := func() string {
		for next < len(items) {
			rank := next + 1
			next++
			if _, ok := isPrime[rank]; !ok {
				return items[rank-1]
			}
		}
		return ""
	}

	lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	table := make(Table, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			if r == Glyph {
				row = append(row, Cell{Src: take()})
			} else {
				row = append(row, Cell{})
			}
		}
		table = append(table, row)
	}
	return table
}

// FrameCapacity returns how many items a layout can show, counting the
// prime-ranked items that are skipped along the way.
func FrameCapacity(layout string) int {
	slots := strings.Count(layout, string(Glyph))
	n := 0
	for shown := 0; shown < slots; {
		n++
		if !primes.IsPrime(n) {
			shown++
		}
	}
	return n
}

// FrameDropped returns how many of n items a layout cannot show. Prime-ranked
// items past the layout's capacity are skipped anyway and are not counted.
func FrameDropped(layout string, n int) int {
	dropped := 0
	for rank := FrameCapacity(layout) + 1; rank <= n; rank++ {
		if !primes.IsPrime(rank) {
			dropped++
		}
	}
	return dropped
}
