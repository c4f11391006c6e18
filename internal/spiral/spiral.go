// Package spiral lays out an ordered sequence on an outward rectangular
// spiral and reads it back as rows.
//
// The first item sits at the origin. The walk then goes east, north, west and
// south in turn, with run lengths 1, 1, 2, 2, 3, 3, ... so that every two legs
// close one ring. Y grows downwards, so north is (0, -1).
//
// Each placed item is tagged with whether its 1-based rank is prime.
package spiral

import (
	"cmp"
	"iter"
	"slices"

	"github.com/thruflo/primespiral/internal/primes"
)

// Position is a cell on the unbounded integer lattice.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the lattice.
type Direction struct {
	DX, DY int
}

// The four walk directions.
var (
	East  = Direction{DX: 1, DY: 0}
	North = Direction{DX: 0, DY: -1}
	West  = Direction{DX: -1, DY: 0}
	South = Direction{DX: 0, DY: 1}
)

// Directions is the fixed turn order of the walk.
var Directions = [4]Direction{East, North, West, South}

// Item is an input value annotated with its rank and the primeness of that rank.
type Item[T any] struct {
	Value   T
	Rank    int
	IsPrime bool
}

// Placement maps lattice cells to the items placed on them.
type Placement[T any] map[Position]Item[T]

// Grid is a placement read back in row-major order: rows by ascending Y,
// items within a row by ascending X.
type Grid[T any] [][]Item[T]

// Len returns the number of items in the grid.
func (g Grid[T]) Len() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Walk yields the rank and position of the first n cells of the spiral.
func Walk(n int) iter.Seq2[int, Position] {
	return func(yield func(int, Position) bool) {
		var (
			pos       Position
			dir       int
			runLength = 1
			remaining = 1
		)
		for rank := 1; rank <= n; rank++ {
			if !yield(rank, pos) {
				return
			}
			pos = pos.Add(Directions[dir])
			remaining--
			if remaining > 0 {
				continue
			}
			dir = (dir + 1) % len(Directions)
			// Run length grows after every second leg (after north and south).
			if dir%2 == 0 {
				runLength++
			}
			remaining = runLength
		}
	}
}

// Place puts items on the spiral in input order.
func Place[T any](items []T) Placement[T] {
	isPrime := primes.Set(len(items))
	placement := make(Placement[T], len(items))
	for rank, pos := range Walk(len(items)) {
		_, prime := isPrime[rank]
		placement[pos] = Item[T]{
			Value:   items[rank-1],
			Rank:    rank,
			IsPrime: prime,
		}
	}
	return placement
}

// Rows groups a placement by Y and orders each group by X.
func Rows[T any](p Placement[T]) Grid[T] {
	if len(p) == 0 {
		return Grid[T]{}
	}

	positions := make([]Position, 0, len(p))
	for pos := range p {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	var grid Grid[T]
	for i, pos := range positions {
		if i == 0 || pos.Y != positions[i-1].Y {
			grid = append(grid, nil)
		}
		last := len(grid) - 1
		grid[last] = append(grid[last], p[pos])
	}
	return grid
}

// Arrange places items on the spiral and returns the resulting rows.
func Arrange[T any](items []T) Grid[T] {
	return Rows(Place(items))
}
