package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/primespiral/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		resetFlags(t, cmd)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		for _, cmd := range rootCmd.Commands() {
			resetFlags(t, cmd)
		}
	})

	err := Execute()
	return out.String(), err
}

func TestExecuteNumbers(t *testing.T) {
	out, err := execute(t, "numbers", "--mark-primes", "9")
	require.NoError(t, err)
	assert.Equal(t, "  *   4   *\n  6   1   *\n  *   8   9\n", out)
}

func TestExecuteRenderWithFlags(t *testing.T) {
	tmpDir, _ := testutil.SetupGallery(t, 2)
	testutil.Chdir(t, tmpDir)

	out, err := execute(t, "render", "-f", "text", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "  1   2\n")
}

func TestExecuteVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "primespiral version dev\n", out)
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	assert.Error(t, err)
}
