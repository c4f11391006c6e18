package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thruflo/primespiral/web"
)

var initTemplates string
var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create spiral.yaml and the images/ directory",
	Long: `Creates a spiral.yaml with the default settings and an empty images/
directory in the current directory.

With --templates, also copies the embedded page template and frame layout into
the given directory so they can be edited and passed back with --templates.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTemplates, "templates", "t", "", "directory to export the templates into")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configFile := configPath
	if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(cwd, configFile)
	}
	if fileExists(configFile) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(filepath.Join(cwd, "images"), 0755); err != nil {
		return fmt.Errorf("failed to create images directory: %w", err)
	}
	if err := writeConfigYAML(configFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)

	if initTemplates != "" {
		if err := exportTemplates(initTemplates); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported templates to %s\n", initTemplates)
	}
	return nil
}

// fileExists checks if a regular file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func writeConfigYAML(path string) error {
	content := `# primespiral configuration

source:
  # Directory holding the images, laid out in file name order
  dir: images

  # Glob matched against file names
  pattern: "*.png"

render:
  # html, frame or text
  format: html

  # What to do with images at prime positions: skip or blank
  prime_cell: skip

  # Cell padding in pixels
  cell_padding: 0

  # Wrap the table in a complete HTML document
  page: false
  title: Prime spiral

  # Directory overriding the embedded templates (see init --templates)
  templates: ""

server:
  port: 8374

# Output file; empty writes to stdout
output: ""

# debug, info, warn or error
log_level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// exportTemplates copies the embedded templates into dir.
func exportTemplates(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create template directory %s: %w", dir, err)
	}

	assets := web.GetAssets("")
	for _, name := range []string{web.PageTemplate, web.FrameLayout} {
		target := filepath.Join(dir, name)
		if fileExists(target) && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	return nil
}
