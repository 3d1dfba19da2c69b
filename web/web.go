package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// Template returns the parsed dashboard page template.
func Template() *template.Template {
	return template.Must(template.ParseFS(files, "index.html"))
}
