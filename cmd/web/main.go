package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/i18n"
	"bookcatalog/internal/observability"
	"bookcatalog/internal/platform/cache"
	"bookcatalog/internal/platform/googlebooks"
	"bookcatalog/internal/store"
	"bookcatalog/internal/web"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readiness := map[string]func(context.Context) error{}

	var catalog book.Catalog = googlebooks.NewClient(googlebooks.Config{
		BaseURL: cfg.GoogleBooksBaseURL,
		APIKey:  cfg.GoogleBooksAPIKey,
		RPS:     cfg.GoogleBooksRPS,
		Timeout: cfg.GoogleBooksTimeout,
	})

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		catalog = cache.NewCatalog(catalog, rdb, cfg.CacheTTL, logger.Named("cache"))
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info("search cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	var mirror book.Mirror
	if cfg.DatabaseDSN != "" {
		pool, err := openDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		mirror = store.NewRecordPG(pool)
		readiness["db"] = pool.Ping
		logger.Info("catalog mirror enabled", zap.String("dsn", redactDSN(cfg.DatabaseDSN)))
	}

	svc := book.NewService(catalog, mirror, logger.Named("book"), book.Config{
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	})

	bundle, err := i18n.Default(cfg.DefaultLocale)
	if err != nil {
		return err
	}

	pages, err := web.New(svc, bundle, logger.Named("web"), cfg.CarouselInterval)
	if err != nil {
		return err
	}

	handler := newRouter(routerDeps{
		pages:     pages,
		logger:    logger,
		rateLimit: httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
		locale:    bundle.Resolve,
		readiness: readiness,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
