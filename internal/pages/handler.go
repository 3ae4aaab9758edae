package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"tamilwords/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is passed to the page shell template.
type PageData struct {
	Name       string
	Title      string
	Page       Page
	APIBaseURL string
	Script     string
	Routes     []Route
}

// Handler serves the page shell for every route in the table and 404 for
// anything else.
type Handler struct {
	router *mux.Router
	shell  *template.Template
	cfg    *config.Config
	script string
	logger *slog.Logger
}

// NewHandler parses the shell template once and registers one GET route per
// table entry. script, when set, is referenced from the shell as the frontend bundle.
func NewHandler(cfg *config.Config, script string, logger *slog.Logger) (*Handler, error) {
	shell, err := template.ParseFS(templateFS, "templates/shell.html")
	if err != nil {
		return nil, fmt.Errorf("parse page shell: %w", err)
	}

	h := &Handler{
		router: mux.NewRouter(),
		shell:  shell,
		cfg:    cfg,
		script: script,
		logger: logger,
	}

	for _, route := range routes {
		h.router.HandleFunc(route.Path, h.page(route)).
			Methods(http.MethodGet, http.MethodHead).
			Name(route.Name)
	}
	h.router.NotFoundHandler = http.HandlerFunc(h.notFound)

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) page(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bound := h.cfg.WithEnvironment(EnvironmentFromRequest(r))
		data := PageData{
			Name:       route.Name,
			Title:      route.Title,
			Page:       route.Page,
			APIBaseURL: bound.BaseURL(),
			Script:     h.script,
			Routes:     Routes(),
		}

		var buf bytes.Buffer
		if err := h.shell.ExecuteTemplate(&buf, "shell", data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to render page", "page", route.Page, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.logger.DebugContext(r.Context(), "Rendered page",
			"path", r.URL.Path,
			"page", route.Page,
			"apiBaseURL", data.APIBaseURL)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "No route for path", "path", r.URL.Path)
	http.NotFound(w, r)
}

// EnvironmentFromRequest reports the scheme and host the page was requested on,
// honouring the usual reverse proxy headers.
func EnvironmentFromRequest(r *http.Request) config.Environment {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	return config.Environment{Scheme: scheme, Host: host}
}
