package store

import (
	"context"
	"errors"
	"testing"

	"bookcatalog/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPG_SaveRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecordPG(mock)
	rec := book.Record{ID: "abc", VolumeInfo: book.VolumeInfo{Title: "Emma", Authors: []string{"Jane Austen"}}}

	t.Run("upserts", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO catalog_records").
			WithArgs("abc", "Emma", []string{"Jane Austen"}, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.SaveRecord(context.Background(), rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil authors stored as empty array", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO catalog_records").
			WithArgs("x", "", []string{}, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.SaveRecord(context.Background(), book.Record{ID: "x"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO catalog_records").
			WithArgs("abc", "Emma", []string{"Jane Austen"}, pgxmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))

		err := repo.SaveRecord(context.Background(), rec)
		assert.ErrorContains(t, err, "upsert record abc")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id", func(t *testing.T) {
		err := repo.SaveRecord(context.Background(), book.Record{})
		assert.ErrorIs(t, err, book.ErrMissingID)
	})
}

func TestRecordPG_GetRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecordPG(mock)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs("abc").
			WillReturnRows(pgxmock.NewRows([]string{"raw_json"}).
				AddRow([]byte(`{"id":"abc","volumeInfo":{"title":"Emma","pageCount":474}}`)))

		rec, err := repo.GetRecord(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "Emma", rec.VolumeInfo.Title)
		assert.Equal(t, 474, rec.VolumeInfo.PageCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs("nope").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetRecord(context.Background(), "nope")
		assert.ErrorIs(t, err, book.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecordPG_ListRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecordPG(mock)

	t.Run("prefix filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs("em", 5).
			WillReturnRows(pgxmock.NewRows([]string{"raw_json"}).
				AddRow([]byte(`{"id":"a","volumeInfo":{"title":"Emma"}}`)).
				AddRow([]byte(`{"id":"b","volumeInfo":{"title":"Emilio"}}`)))

		recs, err := repo.ListRecords(context.Background(), " em ", 5)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Emilio", recs[1].VolumeInfo.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result and default limit", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs("", 20).
			WillReturnRows(pgxmock.NewRows([]string{"raw_json"}))

		recs, err := repo.ListRecords(context.Background(), "", 0)
		require.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wildcards are escaped", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs(`100\%\_`, 20).
			WillReturnRows(pgxmock.NewRows([]string{"raw_json"}))

		_, err := repo.ListRecords(context.Background(), "100%_", 20)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT raw_json FROM catalog_records").
			WithArgs("", 20).
			WillReturnError(errors.New("down"))

		_, err := repo.ListRecords(context.Background(), "", 20)
		assert.ErrorContains(t, err, "list records")
	})
}
