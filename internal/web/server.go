// Package web provides the HTTP server for the condo-registry UI: a table
// and map of every recorded building, and the submission form.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/evcraddock/condo-registry/internal/condo"
	"github.com/evcraddock/condo-registry/internal/geocode"
	"github.com/evcraddock/condo-registry/internal/logging"
	"github.com/evcraddock/condo-registry/internal/metrics"
	"github.com/evcraddock/condo-registry/internal/sheet"
	"github.com/evcraddock/condo-registry/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Store is the record store the server reads and appends.
type Store interface {
	Append(ctx context.Context, rec *condo.Record) error
	ReadAll(ctx context.Context) ([]sheet.Row, error)
}

// Resolver turns addresses into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geocode.Point, error)
}

// Uploader stores a submitted photo and returns its URL. A nil Uploader
// disables photo upload; records then carry the no-image placeholder.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error)
}

// Server is the condo-registry HTTP server.
type Server struct {
	store     Store
	resolver  Resolver
	uploader  Uploader
	assembler *view.Assembler
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer wires the handlers around the given collaborators.
func NewServer(store Store, resolver Resolver, uploader Uploader) (*Server, error) {
	funcMap := template.FuncMap{
		"formatCoord": tmplFormatCoord,
		"hasImage":    tmplHasImage,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		store:     store,
		resolver:  resolver,
		uploader:  uploader,
		assembler: view.NewAssembler(resolver),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("GET /{$}", s.handleList)
	s.mux.HandleFunc("GET /add", s.handleAddForm)
	s.mux.HandleFunc("POST /add", s.handleAddPost)
	s.mux.HandleFunc("GET /api/condos", s.handleAPICondos)
	s.mux.HandleFunc("GET /api/points", s.handleAPIPoints)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", metrics.Handler())

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting condo registry on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// render executes a template, falling back to a bare 500 when rendering
// itself fails.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}

// Template helper functions

func tmplFormatCoord(f *float64) string {
	if f == nil {
		return "—"
	}
	return fmt.Sprintf("%.4f", *f)
}

func tmplHasImage(img string) bool {
	return img != "" && img != condo.NoImage
}
