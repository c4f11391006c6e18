package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// DefaultTestBuffer is subtracted from the test deadline to leave time for
// cleanup.
const DefaultTestBuffer = 2 * time.Second

// SetupGallery creates a temporary directory containing an images/ directory
// with n PNG files named by ImageNames. Returns the temp directory and the
// images directory. The directory is automatically cleaned up when the test
// completes.
func SetupGallery(t *testing.T, n int) (string, string) {
	t.Helper()

	tmpDir := t.TempDir()
	imagesDir := filepath.Join(tmpDir, "images")
	require.NoError(t, os.MkdirAll(imagesDir, 0755))

	for _, name := range ImageNames(n) {
		require.NoError(t, os.WriteFile(filepath.Join(imagesDir, name), []byte("png"), 0644))
	}
	return tmpDir, imagesDir
}

// WriteTestFile writes content to path relative to base, creating parent
// directories as needed.
func WriteTestFile(t *testing.T, base, path, content string) {
	t.Helper()

	full := filepath.Join(base, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

// Chdir changes the working directory to dir and restores it when the test
// completes.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(original)
	})
}

// ContextWithTestDeadline creates a context that ends DefaultTestBuffer before
// the test's deadline. If the test has no deadline, or the buffered deadline
// has already passed, it uses the fallback duration.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}
