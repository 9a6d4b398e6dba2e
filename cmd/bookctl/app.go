package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/i18n"
	"bookcatalog/internal/platform/cache"
	"bookcatalog/internal/platform/googlebooks"
	"bookcatalog/internal/store"
)

// mirrorStore is the Postgres mirror as the commands use it.
type mirrorStore interface {
	book.Mirror
	ListRecords(ctx context.Context, prefix string, limit int) ([]book.Record, error)
}

// app holds what the commands share. Tests fill catalog and mirror
// directly; otherwise they are built from the environment on first use.
type app struct {
	out    io.Writer
	errOut io.Writer

	noColor bool
	jsonOut bool
	lang    string

	bundle  *i18n.Bundle
	cfg     *config.Config
	catalog book.Catalog
	mirror  mirrorStore
	closers []func()
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut}
}

func (a *app) t(key string) string {
	return a.bundle.T(a.lang, key)
}

func (a *app) mapper() book.Mapper {
	return book.Mapper{UnknownAuthor: a.t("book.unknown_author")}
}

func (a *app) config() (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	a.cfg = &cfg
	return cfg, nil
}

func (a *app) catalogClient() (book.Catalog, error) {
	if a.catalog == nil {
		cfg, err := a.config()
		if err != nil {
			return nil, err
		}
		var catalog book.Catalog = googlebooks.NewClient(googlebooks.Config{
			BaseURL:   cfg.GoogleBooksBaseURL,
			APIKey:    cfg.GoogleBooksAPIKey,
			UserAgent: "bookctl",
			RPS:       cfg.GoogleBooksRPS,
			Timeout:   cfg.GoogleBooksTimeout,
		})
		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			a.closers = append(a.closers, func() { _ = rdb.Close() })
			catalog = cache.NewCatalog(catalog, rdb, cfg.CacheTTL, zap.NewNop())
		}
		a.catalog = catalog
	}
	return a.catalog, nil
}

func (a *app) service() (*book.Service, error) {
	catalog, err := a.catalogClient()
	if err != nil {
		return nil, err
	}
	pageSize := 0
	if a.cfg != nil {
		pageSize = a.cfg.PageSize
	}
	return book.NewService(catalog, nil, zap.NewNop(), book.Config{PageSize: pageSize}), nil
}

func (a *app) openMirror(ctx context.Context) (mirrorStore, error) {
	if a.mirror != nil {
		return a.mirror, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set: the catalog mirror is unavailable")
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("connecting to mirror: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	a.mirror = store.NewRecordPG(pool)
	return a.mirror, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
