package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/primes"
)

var primesCount int

var primesCmd = &cobra.Command{
	Use:   "primes [max]",
	Short: "Print prime numbers",
	Long: `Prints the primes up to max, one per line.

With --count, prints the first count primes instead. max and --count cannot
be combined.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrimes,
}

func init() {
	primesCmd.Flags().IntVarP(&primesCount, "count", "n", 0, "print the first n primes")
	rootCmd.AddCommand(primesCmd)
}

func runPrimes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("count") {
		if len(args) > 0 {
			return fmt.Errorf("max and --count cannot be combined")
		}
		if primesCount < 0 {
			return fmt.Errorf("invalid count %d: must not be negative", primesCount)
		}

		printed := 0
		for p := range primes.All() {
			if printed == primesCount {
				break
			}
			fmt.Fprintln(out, p)
			printed++
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("either max or --count is required")
	}
	max, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", args[0], err)
	}
	for p := range primes.UpTo(max) {
		fmt.Fprintln(out, p)
	}
	return nil
}
