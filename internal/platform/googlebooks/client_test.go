package googlebooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, RPS: 1000, Timeout: 2 * time.Second, UserAgent: "bookcatalog-test"})
}

func TestClient_SearchBooks(t *testing.T) {
	t.Run("escapes parameters and decodes items", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/volumes", r.URL.Path)
			assert.Equal(t, `inauthor:"Jane Austen"`, r.URL.Query().Get("q"))
			assert.Equal(t, "12", r.URL.Query().Get("maxResults"))
			assert.Equal(t, "24", r.URL.Query().Get("startIndex"))
			assert.Contains(t, r.URL.RawQuery, "q=inauthor%3A%22Jane+Austen%22")
			assert.Equal(t, "bookcatalog-test", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"totalItems":2,"items":[
				{"id":"a","volumeInfo":{"title":"Emma","authors":["Jane Austen"],"averageRating":4}},
				{"id":"b","volumeInfo":{"title":"Persuasion"}}]}`))
		})

		records, err := client.SearchBooks(context.Background(), `inauthor:"Jane Austen"`, 12, 24)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a", records[0].ID)
		assert.Equal(t, "Emma", records[0].VolumeInfo.Title)
		assert.Equal(t, 4.0, records[0].Rating())
		assert.Empty(t, records[1].VolumeInfo.Authors)
	})

	t.Run("missing items is an empty result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"kind":"books#volumes","totalItems":0}`))
		})

		records, err := client.SearchBooks(context.Background(), "zzzz", 12, 0)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("non-2xx is an APIError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"items":[{"id":"ignored"}]}`))
		})

		records, err := client.SearchBooks(context.Background(), "x", 12, 0)
		assert.Nil(t, records)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, "search", apiErr.Op)
	})

	t.Run("single request, no retries", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.SearchBooks(context.Background(), "x", 1, 0)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("api key appended", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()
		client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})

		_, err := client.SearchBooks(context.Background(), "x", 1, 0)
		assert.NoError(t, err)
	})
}

func TestClient_GetBookByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/volumes/zyTCAlFPjgYC", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"zyTCAlFPjgYC","volumeInfo":{"title":"The Google Story",
				"imageLinks":{"smallThumbnail":"http://s","thumbnail":"http://t"},
				"publishedDate":"2005-11-15","pageCount":207,"description":"<p>Hi</p>"}}`))
		})

		rec, err := client.GetBookByID(context.Background(), "zyTCAlFPjgYC")
		require.NoError(t, err)
		assert.Equal(t, "The Google Story", rec.VolumeInfo.Title)
		assert.Equal(t, "http://t", rec.VolumeInfo.ImageLinks.Thumbnail)
		assert.Equal(t, 207, rec.VolumeInfo.PageCount)
		assert.Equal(t, "2005", rec.PublishedYear())
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := client.GetBookByID(context.Background(), "missing")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.NotFound())
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"x","volumeInfo":`))
		})

		rec, err := client.GetBookByID(context.Background(), "x")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Zero(t, apiErr.StatusCode)
		assert.Empty(t, rec.ID)
	})

	t.Run("payload without id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		})

		_, err := client.GetBookByID(context.Background(), "x")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		client := NewClient(Config{BaseURL: srv.URL})

		_, err := client.GetBookByID(context.Background(), "x")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.NotNil(t, apiErr.Unwrap())
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"x"}`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetBookByID(ctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "googlebooks search: unexpected status 503 Service Unavailable",
		(&APIError{Op: "search", StatusCode: 503}).Error())
	assert.Equal(t, "googlebooks volume: boom",
		(&APIError{Op: "volume", Err: errors.New("boom")}).Error())
}
