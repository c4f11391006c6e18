package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores cmd's flags and the persistent root flags to their
// defaults so tests don't leak settings into each other.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

// runCmd executes cmd's RunE with flags set from the given name/value pairs.
func runCmd(t *testing.T, cmd *cobra.Command, args []string, flags ...string) (string, error) {
	t.Helper()
	resetFlags(t, cmd)
	t.Cleanup(func() { resetFlags(t, cmd) })

	for i := 0; i+1 < len(flags); i += 2 {
		require.NoError(t, cmd.Flags().Set(flags[i], flags[i+1]))
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	defer cmd.SetOut(nil)
	defer cmd.SetErr(nil)

	err := cmd.RunE(cmd, args)
	return out.String(), err
}
