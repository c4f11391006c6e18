package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/gallery"
	"github.com/thruflo/primespiral/internal/logging"
	"github.com/thruflo/primespiral/internal/render"
)

var (
	flagDir       string
	flagPattern   string
	flagFormat    string
	flagPrimeCell string
	flagPadding   int
	flagPage      bool
	flagOutput    string
	flagTemplates string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the spiral once",
	Long: `Lists the source directory, arranges the matching files on the spiral and
writes the result.

Formats:
  html   one <table>, one <tr> per spiral row, one <img> cell per item
  frame  fills the glyphs of a fixed frame layout in input order
  text   prints the spiral of item positions as numbers`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

// addRenderFlags registers the flags that override the config file.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagDir, "dir", "d", config.DefaultSourceDir, "source directory")
	cmd.Flags().StringVarP(&flagPattern, "pattern", "p", gallery.DefaultPattern, "glob matched against file names")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", config.DefaultFormat, "output format: html, frame or text")
	cmd.Flags().StringVar(&flagPrimeCell, "prime-cell", string(render.PrimeCellSkip), "prime-ranked items: skip or blank")
	cmd.Flags().IntVar(&flagPadding, "padding", 0, "cell padding in pixels")
	cmd.Flags().BoolVar(&flagPage, "page", false, "wrap the table in a full HTML page")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&flagTemplates, "templates", "", "directory overriding the embedded templates")
}

// applyRenderFlags copies explicitly set flags over cfg and revalidates it.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Source.Dir = flagDir
	}
	if flags.Changed("pattern") {
		cfg.Source.Pattern = flagPattern
	}
	if flags.Changed("format") {
		cfg.Render.Format = flagFormat
	}
	if flags.Changed("prime-cell") {
		cfg.Render.PrimeCell = flagPrimeCell
	}
	if flags.Changed("padding") {
		cfg.Render.CellPadding = flagPadding
	}
	if flags.Changed("page") {
		cfg.Render.Page = flagPage
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("templates") {
		cfg.Render.Templates = flagTemplates
	}
	return config.ValidateConfig(cfg)
}

// renderConfig loads the config file and applies cmd's flags to it.
func renderConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := applyRenderFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}

	n, err := buildToOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	logging.Info("rendered", "items", n, "output", outputName(cfg))
	if cfg.Output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d items to %s\n", n, cfg.Output)
	}
	return nil
}

func outputName(cfg *config.Config) string {
	if cfg.Output == "" {
		return "stdout"
	}
	return cfg.Output
}
