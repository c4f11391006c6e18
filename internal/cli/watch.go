package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/logging"
	"github.com/thruflo/primespiral/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the source directory changes",
	Long: `Renders once, then watches the source directory and renders again each
time a matching file is added, changed, removed or renamed. Runs until
interrupted. An output file is required.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addRenderFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before re-rendering")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndBuild(ctx, cfg, watchDebounce, cmd.ErrOrStderr())
}

// watchAndBuild renders cfg once and then on every change until ctx is done.
func watchAndBuild(ctx context.Context, cfg *config.Config, debounce time.Duration, status io.Writer) error {
	if cfg.Output == "" {
		return config.ValidationError{Field: "output", Message: "watch requires an output file"}
	}

	rebuild := func(ctx context.Context) error {
		n, err := buildToOutput(cfg, io.Discard)
		if err != nil {
			return err
		}
		fmt.Fprintf(status, "Wrote %d items to %s\n", n, cfg.Output)
		return nil
	}

	// Start watching before the first build so no change is missed.
	w, err := watch.New(cfg.Source.Dir, cfg.Source.Pattern, debounce, rebuild)
	if err != nil {
		return err
	}
	if err := rebuild(ctx); err != nil {
		w.Close()
		return fmt.Errorf("failed to render: %w", err)
	}

	logging.Info("watching", "dir", cfg.Source.Dir, "pattern", cfg.Source.Pattern)
	return w.Run(ctx)
}
