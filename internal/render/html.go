package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/thruflo/primespiral/web"
)

// HTMLOptions configures HTML output.
type HTMLOptions struct {
	// Padding is the cell padding in pixels.
	Padding int
	// Page wraps the table in a full HTML document.
	Page  bool
	Title string
	// Assets holds the page template. Nil uses the embedded one.
	Assets fs.FS
}

type htmlData struct {
	Rows    Table
	Padding int
	Title   string
}

// HTML writes table as an HTML <table>, one <tr> per row and one <td> per cell.
func HTML(w io.Writer, table Table, opts HTMLOptions) error {
	assets := opts.Assets
	if assets == nil {
		assets = web.GetAssets("")
	}

	tmpl, err := template.ParseFS(assets, web.PageTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse page template: %w", err)
	}

	name := "table"
	if opts.Page {
		name = "page"
	}
	data := htmlData{Rows: table, Padding: opts.Padding, Title: opts.Title}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
