package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/primespiral/internal/spiral"
)

func TestImageNamesSortInOrder(t *testing.T) {
	names := ImageNames(120)
	assert.Equal(t, "001.png", names[0])
	assert.Equal(t, "120.png", names[119])
	assert.True(t, sort.StringsAreSorted(names))
}

func TestSetupGallery(t *testing.T) {
	tmpDir, imagesDir := SetupGallery(t, 5)
	assert.Equal(t, filepath.Join(tmpDir, "images"), imagesDir)

	entries, err := os.ReadDir(imagesDir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestWriteTestFile(t *testing.T) {
	base := t.TempDir()
	WriteTestFile(t, base, "nested/dir/file.txt", "hello")

	data, err := os.ReadFile(filepath.Join(base, "nested", "dir", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestContextWithTestDeadline(t *testing.T) {
	ctx, cancel := ContextWithTestDeadline(t, time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, time.Until(deadline) > 0)
}

func TestGridAssertions(t *testing.T) {
	grid := spiral.Arrange(ImageNames(30))
	AssertGridCoverage(t, grid, 30)
	AssertPrimeFlags(t, grid)
}
