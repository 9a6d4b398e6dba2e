package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"bookcatalog/internal/book"
	"bookcatalog/internal/i18n"
)

//go:embed templates
var templateFS embed.FS

var pageNames = []string{"home", "list", "detail", "error"}

// page is the data every template receives.
type page struct {
	Lang           string
	Theme          book.Theme
	Title          string
	Path           string
	RefreshURL     string
	RefreshSeconds int
	Error          string
	Data           any

	bundle *i18n.Bundle
}

// T translates key into the page language.
func (p page) T(key string) string { return p.bundle.T(p.Lang, key) }

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	root, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/base.tmpl", "templates/partials/*.tmpl")
	if err != nil {
		return nil, err
	}

	rd := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		rd.pages[name] = t
	}
	return rd, nil
}

// render executes the base layout for page name into a buffer first so a
// template failure never leaves a half-written response.
func (rd *renderer) render(w http.ResponseWriter, name string, status int, p page) error {
	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", p); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
