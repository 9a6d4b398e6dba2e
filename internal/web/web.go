// Package web renders the catalog pages and serves the load-more JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/i18n"
	"bookcatalog/internal/platform/googlebooks"
)

//go:embed assets
var assetsFS embed.FS

// Handler serves the home, list and detail pages.
type Handler struct {
	svc              *book.Service
	bundle           *i18n.Bundle
	logger           *zap.Logger
	views            *renderer
	policy           *bluemonday.Policy
	carouselInterval time.Duration
}

// New parses the templates and returns a ready Handler. A zero
// carouselInterval disables carousel auto-advance.
func New(svc *book.Service, bundle *i18n.Bundle, logger *zap.Logger, carouselInterval time.Duration) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	views, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		svc:              svc,
		bundle:           bundle,
		logger:           logger,
		views:            views,
		policy:           descriptionPolicy(),
		carouselInterval: carouselInterval,
	}, nil
}

// Register mounts the page, theme, API and asset routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /list", h.List)
	mux.HandleFunc("GET /book", h.Detail)
	mux.HandleFunc("POST /theme", h.ToggleTheme)
	mux.HandleFunc("GET /api/books", h.APIBooks)

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(assets)))
}

func (h *Handler) lang(r *http.Request) string {
	if l := httpx.LocaleFrom(r); l != "" {
		return l
	}
	return h.bundle.Fallback()
}

func (h *Handler) mapper(lang string) book.Mapper {
	return book.Mapper{UnknownAuthor: h.bundle.T(lang, "book.unknown_author")}
}

func (h *Handler) newPage(r *http.Request, title string) page {
	lang := h.lang(r)
	return page{
		Lang:   lang,
		Theme:  httpx.ThemeFrom(r),
		Title:  title,
		Path:   r.URL.RequestURI(),
		bundle: h.bundle,
	}
}

// renderError shows msgKey as an error notice. No partial results are
// rendered alongside it.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msgKey string, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("page failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
	}
	p := h.newPage(r, h.bundle.T(h.lang(r), "site.title"))
	p.Error = h.bundle.T(p.Lang, msgKey)
	h.render(w, "error", status, p)
}

func (h *Handler) render(w http.ResponseWriter, name string, status int, p page) {
	if err := h.views.render(w, name, status, p); err != nil {
		h.logger.Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// statusFor maps a fetch error to the response status.
func statusFor(err error) int {
	var apiErr *googlebooks.APIError
	switch {
	case errors.Is(err, book.ErrMissingID), errors.Is(err, book.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		if apiErr.NotFound() {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
