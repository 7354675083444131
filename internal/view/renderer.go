package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer executes a named page inside the shared layout.
type Renderer struct {
	pages    map[string]*template.Template
	minifier *minify.M
}

type Options struct {
	MinifyHTML bool
}

// New parses every page under templates/ against the layout.
func New(opts Options) (*Renderer, error) {
	return NewFromFS(templateFS, opts)
}

func NewFromFS(fsys fs.FS, opts Options) (*Renderer, error) {
	base, err := template.New("base").Funcs(sprig.FuncMap()).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.Must(base.Clone()).ParseFS(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}

	if opts.MinifyHTML {
		r.minifier = minify.New()
		r.minifier.AddFunc("text/html", html.Minify)
	}
	return r, nil
}

// Render writes page name with data. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	if r.minifier != nil {
		return r.minifier.Minify("text/html", w, &buf)
	}
	_, err := buf.WriteTo(w)
	return err
}
