package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/i18n"
	"bookcatalog/internal/platform/googlebooks"
)

func newTestServer(t *testing.T, catalog book.Catalog, cfg book.Config) http.Handler {
	t.Helper()
	bundle, err := i18n.Default("es")
	require.NoError(t, err)

	svc := book.NewService(catalog, nil, nil, cfg)
	h, err := New(svc, bundle, nil, 5*time.Second)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Register(mux)
	return httpx.Chain(mux, httpx.ThemeMiddleware, httpx.LocaleMiddleware(bundle.Resolve))
}

func get(t *testing.T, handler http.Handler, target string, headers ...string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return rec, doc
}

func makeRecords(prefix string, n int) []book.Record {
	out := make([]book.Record, n)
	for i := range n {
		out[i] = book.Record{
			ID: fmt.Sprintf("%s-%d", prefix, i),
			VolumeInfo: book.VolumeInfo{
				Title:         fmt.Sprintf("Title %s %d", prefix, i),
				Authors:       []string{"Author " + prefix},
				AverageRating: 3.5,
			},
		}
	}
	return out
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing id", fmt.Errorf("wrap: %w", book.ErrMissingID), http.StatusBadRequest},
		{"bad cursor", book.ErrInvalidCursor, http.StatusBadRequest},
		{"upstream 404", fmt.Errorf("get: %w", &googlebooks.APIError{Op: "volume", StatusCode: 404}), http.StatusNotFound},
		{"upstream 500", &googlebooks.APIError{Op: "search", StatusCode: 500}, http.StatusBadGateway},
		{"transport", &googlebooks.APIError{Op: "search", Err: errors.New("dial")}, http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestValidateParams(t *testing.T) {
	assert.Nil(t, validateParams(listParams{Page: 1}))

	details := validateParams(listParams{Page: 0})
	require.Len(t, details, 1)
	assert.Equal(t, "page", details[0].Field)

	details = validateParams(detailParams{})
	assert.True(t, hasRequiredFailure(details, "id"))
}

func TestAssets(t *testing.T) {
	handler := newTestServer(t, nil, book.Config{})

	req := httptest.NewRequest(http.MethodGet, "/assets/img/default-cover.svg", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".book-card")
}
