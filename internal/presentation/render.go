package presentation

import (
	"html/template"
	"io"

	"github.com/vfg2006/sales-dashboard/web"
)

// Renderer executa o template da página do dashboard
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, page *Page) error {
	return r.templates.ExecuteTemplate(w, "dashboard_page", page)
}
