// Package web holds the embedded HTML templates for the blog pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates holds the parsed HTML templates.
type Templates struct {
	templates *template.Template
}

// NewTemplates parses all embedded templates.
func NewTemplates() (*Templates, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{templates: tmpl}, nil
}

// Render renders a named template with the provided data.
func (t *Templates) Render(w http.ResponseWriter, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	tmpl := t.templates.Lookup(name)
	if tmpl == nil {
		return fmt.Errorf("template %q not found", name)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %q: %w", name, err)
	}

	return nil
}
