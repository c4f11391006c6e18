package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumbersCommand(t *testing.T) {
	out, err := runCmd(t, numbersCmd, []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, "  5   4   3\n  6   1   2\n  7   8   9\n", out)
}

func TestNumbersCommandMarkPrimes(t *testing.T) {
	out, err := runCmd(t, numbersCmd, []string{"4"}, "mark-primes", "true")
	require.NoError(t, err)
	assert.Equal(t, "  4   *\n  1   *\n", out)
}

func TestNumbersCommandZero(t *testing.T) {
	out, err := runCmd(t, numbersCmd, []string{"0"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNumbersCommandInvalid(t *testing.T) {
	for _, arg := range []string{"-1", "ten"} {
		_, err := runCmd(t, numbersCmd, []string{arg})
		assert.Error(t, err, arg)
	}
}
