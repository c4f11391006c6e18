package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/primespiral/internal/primes"
	"github.com/thruflo/primespiral/internal/spiral"
)

// AssertGridCoverage asserts that grid holds ranks 1..n exactly once each and
// that no row is empty.
func AssertGridCoverage[T any](t *testing.T, grid spiral.Grid[T], n int) {
	t.Helper()

	require.Equal(t, n, grid.Len(), "item count mismatch")

	seen := make(map[int]bool, n)
	for i, row := range grid {
		assert.NotEmpty(t, row, "row %d is empty", i)
		for _, item := range row {
			assert.False(t, seen[item.Rank], "rank %d appears twice", item.Rank)
			assert.True(t, item.Rank >= 1 && item.Rank <= n, "rank %d out of range", item.Rank)
			seen[item.Rank] = true
		}
	}
}

// AssertPrimeFlags asserts that every item is flagged prime exactly when its
// rank is prime.
func AssertPrimeFlags[T any](t *testing.T, grid spiral.Grid[T]) {
	t.Helper()

	for _, row := range grid {
		for _, item := range row {
			assert.Equal(t, primes.IsPrime(item.Rank), item.IsPrime, "rank %d", item.Rank)
		}
	}
}
