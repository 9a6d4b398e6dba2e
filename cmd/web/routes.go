package main

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/web"
)

type routerDeps struct {
	pages     *web.Handler
	logger    *zap.Logger
	rateLimit *httpx.RateLimitMiddleware
	locale    func(acceptLanguage string) string
	readiness map[string]func(context.Context) error
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", readyHandler(d.readiness))
	router.Handle("GET /metrics", promhttp.Handler())

	d.pages.Register(router)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(d.logger),
		httpx.SecurityHeadersMiddleware,
	}
	if d.rateLimit != nil {
		middlewares = append(middlewares, d.rateLimit.Middleware)
	}
	middlewares = append(middlewares,
		httpx.ThemeMiddleware,
		httpx.LocaleMiddleware(d.locale),
		httpx.AccessLogMiddleware(d.logger),
	)
	return httpx.Chain(router, middlewares...)
}

func readyHandler(checks map[string]func(context.Context) error) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				http.Error(w, name+" not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}
