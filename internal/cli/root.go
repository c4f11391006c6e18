package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "primespiral",
	Short: "Lay out images on a spiral, leaving out the ones at prime positions",
	Long: `primespiral arranges the files of a directory, in name order, on an
outward rectangular spiral and renders the result as an HTML table. Items whose
1-based position is a prime number are left out or blanked.

Settings are read from spiral.yaml in the current directory (or --config);
command-line flags override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("primespiral version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)

	return cfg, nil
}
