// Package cache keeps recent catalog responses in Redis so that repeated
// page views do not hit the upstream API.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookcatalog/internal/book"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "bookcatalog:"

// Catalog decorates a book.Catalog with a read-through Redis cache. Only
// successful responses are stored; Redis failures fall through to the
// upstream catalog.
type Catalog struct {
	next   book.Catalog
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalog(next book.Catalog, client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Catalog{next: next, client: client, ttl: ttl, logger: logger}
}

func searchKey(query string, maxResults, startIndex int) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%d|%d", query, maxResults, startIndex)))
	return keyPrefix + "search:" + hex.EncodeToString(sum[:])
}

func volumeKey(id string) string {
	return keyPrefix + "volume:" + id
}

func (c *Catalog) SearchBooks(ctx context.Context, query string, maxResults, startIndex int) ([]book.Record, error) {
	key := searchKey(query, maxResults, startIndex)

	var records []book.Record
	if c.load(ctx, key, &records) {
		return records, nil
	}

	records, err := c.next.SearchBooks(ctx, query, maxResults, startIndex)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, records)
	return records, nil
}

func (c *Catalog) GetBookByID(ctx context.Context, id string) (book.Record, error) {
	key := volumeKey(id)

	var rec book.Record
	if c.load(ctx, key, &rec) {
		return rec, nil
	}

	rec, err := c.next.GetBookByID(ctx, id)
	if err != nil {
		return book.Record{}, err
	}
	c.store(ctx, key, rec)
	return rec, nil
}

func (c *Catalog) load(ctx context.Context, key string, target any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		c.logger.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Catalog) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
