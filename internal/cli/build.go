package cli

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/thruflo/primespiral/internal/config"
	"github.com/thruflo/primespiral/internal/gallery"
	"github.com/thruflo/primespiral/internal/logging"
	"github.com/thruflo/primespiral/internal/render"
	"github.com/thruflo/primespiral/internal/spiral"
	"github.com/thruflo/primespiral/web"
)

// build lists the source directory and writes the rendered layout to w.
// When linkBase is set, item references are rewritten to linkBase plus the
// escaped file name. It returns the number of items found.
func build(cfg *config.Config, w io.Writer, linkBase string) (int, error) {
	items, err := gallery.List(cfg.Source.Dir, cfg.Source.Pattern)
	if err != nil {
		return 0, err
	}
	if linkBase != "" {
		for i, item := range items {
			items[i] = linkBase + url.PathEscape(path.Base(item))
		}
	}
	log := logging.WithFields(map[string]interface{}{
		"dir":    cfg.Source.Dir,
		"format": cfg.Render.Format,
	})
	log.Debug("listed items", "count", len(items))

	assets := web.GetAssets(cfg.Render.Templates)

	switch cfg.Render.Format {
	case config.FormatText:
		err = render.Numbers(w, spiral.Arrange(items), false)

	case config.FormatFrame:
		layout, ferr := web.ReadFrame(assets)
		if ferr != nil {
			return 0, ferr
		}
		if dropped := render.FrameDropped(layout, len(items)); dropped > 0 {
			log.Warn("frame too small, extra items dropped", "items", len(items), "dropped", dropped)
		}
		err = render.HTML(w, render.FrameTable(layout, items), htmlOptions(cfg, assets))

	default:
		mode, perr := render.ParsePrimeCell(cfg.Render.PrimeCell)
		if perr != nil {
			return 0, perr
		}
		table := render.SpiralTable(spiral.Arrange(items), mode)
		log.Debug("arranged spiral", "rows", len(table), "cells", table.Cells())
		err = render.HTML(w, table, htmlOptions(cfg, assets))
	}
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func htmlOptions(cfg *config.Config, assets fs.FS) render.HTMLOptions {
	return render.HTMLOptions{
		Padding: cfg.Render.CellPadding,
		Page:    cfg.Render.Page,
		Title:   cfg.Render.Title,
		Assets:  assets,
	}
}

// buildToOutput runs build against cfg.Output, or stdout when it is empty.
// Output files are replaced by renaming a temporary file over them.
func buildToOutput(cfg *config.Config, stdout io.Writer) (int, error) {
	if cfg.Output == "" {
		return build(cfg, stdout, "")
	}

	dir := filepath.Dir(cfg.Output)
	tmp, err := os.CreateTemp(dir, ".primespiral-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := build(cfg, tmp, "")
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to write output file: %w", cerr)
	}
	if err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), cfg.Output); err != nil {
		return 0, fmt.Errorf("failed to write output file: %w", err)
	}
	return n, nil
}
