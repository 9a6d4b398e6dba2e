package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bookcatalog/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RecordPG mirrors viewed catalog records into Postgres.
type RecordPG struct {
	db DB
}

func NewRecordPG(db DB) *RecordPG {
	return &RecordPG{db: db}
}

func (r *RecordPG) SaveRecord(ctx context.Context, rec book.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("save record: %w", book.ErrMissingID)
	}
	rawJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", rec.ID, err)
	}
	authors := rec.VolumeInfo.Authors
	if authors == nil {
		authors = []string{}
	}

	const query = `
		INSERT INTO catalog_records (id, title, authors, raw_json, fetched_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			authors = EXCLUDED.authors,
			raw_json = EXCLUDED.raw_json,
			fetched_at = now()`

	if _, err := r.db.Exec(ctx, query, rec.ID, rec.VolumeInfo.Title, authors, rawJSON); err != nil {
		return fmt.Errorf("upsert record %s: %w", rec.ID, err)
	}
	return nil
}

func (r *RecordPG) GetRecord(ctx context.Context, id string) (book.Record, error) {
	const query = `SELECT raw_json FROM catalog_records WHERE id = $1`

	var rawJSON []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&rawJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.Record{}, book.ErrNotFound
		}
		return book.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}

	var rec book.Record
	if err := json.Unmarshal(rawJSON, &rec); err != nil {
		return book.Record{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	return rec, nil
}

// ListRecords returns mirrored records whose title starts with prefix
// (case-insensitive), most recently fetched first.
func (r *RecordPG) ListRecords(ctx context.Context, prefix string, limit int) ([]book.Record, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT raw_json FROM catalog_records
		WHERE $1 = '' OR lower(title) LIKE lower($1) || '%'
		ORDER BY fetched_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, escapeLike(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []book.Record{}
	for rows.Next() {
		var rawJSON []byte
		if err := rows.Scan(&rawJSON); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec book.Record
		if err := json.Unmarshal(rawJSON, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.TrimSpace(s))
}
