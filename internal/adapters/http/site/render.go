package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/okian/olympia/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var assetsFS embed.FS

// staticFS returns the embedded stylesheet directory.
func staticFS() http.FileSystem {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return http.FS(assetsFS)
	}
	return http.FS(sub)
}

var pageNames = []string{"home", "jogos", "medalhas", "notfound"}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	r := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		r.pages[name] = template.Must(template.ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return r
}

func (r *renderer) execute(name string, data any) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown page %q", ErrRender, name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	return buf.Bytes(), nil
}

// render writes page name. Pages carrying a failure message are served
// with 502 and unknown routes with 404.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data errorer) {
	body, err := h.pages.execute(name, data)
	if err != nil {
		h.logger.Error(r.Context(), "render page",
			logger.String("page", name),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	switch {
	case data.ErrMessage() != "":
		status = http.StatusBadGateway
	case name == "notfound":
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
