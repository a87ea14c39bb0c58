package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/polkiloo/storefront/internal/usecase"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are the helpers available to every page template.
var Funcs = template.FuncMap{
	"price":       usecase.FormatPrice,
	"statusBadge": usecase.StatusBadge,
}

// Load parses the embedded page templates.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
