package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/render"
	"github.com/thruflo/primespiral/internal/spiral"
)

var numbersMarkPrimes bool

var numbersCmd = &cobra.Command{
	Use:   "numbers <count>",
	Short: "Print the spiral of positions 1..count",
	Long: `Prints the spiral layout of the numbers 1 to count, one line per row.
Useful for checking how a directory of that many files will be arranged.`,
	Args: cobra.ExactArgs(1),
	RunE: runNumbers,
}

func init() {
	numbersCmd.Flags().BoolVarP(&numbersMarkPrimes, "mark-primes", "m", false, "print prime positions as *")
	rootCmd.AddCommand(numbersCmd)
}

func runNumbers(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid count %q: must be a non-negative integer", args[0])
	}

	grid := spiral.Arrange(make([]struct{}, n))
	return render.Numbers(cmd.OutOrStdout(), grid, numbersMarkPrimes)
}
