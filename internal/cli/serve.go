package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery over HTTP",
	Long: `Starts a web server that renders the gallery page on every request and
serves the source images. Changes to the source directory show up on reload.

Only the html and frame formats can be served.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addRenderFlags(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := config.ValidateServerConfig(&cfg.Server); err != nil {
			return err
		}
	}

	srv, err := newGalleryServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s on http://localhost:%d/\n", cfg.Source.Dir, cfg.Server.Port)
	return srv.Start(ctx)
}

// newGalleryServer builds a server that renders cfg as a full page with
// image links pointing at the server's file route.
func newGalleryServer(cfg *config.Config) (*server.Server, error) {
	if cfg.Render.Format == config.FormatText {
		return nil, config.ValidationError{Field: "render.format", Message: "text output cannot be served"}
	}

	pageCfg := *cfg
	pageCfg.Render.Page = true

	return server.NewServer(&server.Config{
		Port: cfg.Server.Port,
		Dir:  cfg.Source.Dir,
		Page: func(w io.Writer) error {
			_, err := build(&pageCfg, w, server.FilesPrefix)
			return err
		},
	})
}
