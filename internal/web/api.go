package web

import (
	"net/http"

	"go.uber.org/zap"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
)

// APIBooks returns one page of cards as JSON. Without a cursor it starts at
// the first page of the query; with one it continues where the token
// points. meta.next_cursor is set while more pages may exist.
func (h *Handler) APIBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := apiParams{
		Query:  stringParam(query, "q"),
		Genre:  stringParam(query, "genre"),
		Author: stringParam(query, "author"),
		Cursor: stringParam(query, "cursor"),
	}
	if details := validateParams(params); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_params", "invalid query parameters", details)
		return
	}

	var pager *book.Pager
	if params.Cursor != "" {
		c, err := book.DecodeCursor(params.Cursor)
		if err != nil {
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_cursor", "invalid cursor", nil)
			return
		}
		c.PageSize = h.svc.PageSize()
		pager = book.ResumePager(c)
	} else {
		q := book.SearchQuery{Term: params.Query, Genre: params.Genre, Author: params.Author}
		pager = book.NewPager(q.String(), h.svc.PageSize())
	}

	if err := h.svc.LoadMore(r.Context(), pager); err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("load page failed",
				zap.String("request_id", httpx.RequestIDFrom(r)),
				zap.Error(err),
			)
		}
		httpx.JSONErrorWithRequest(r, w, status, "upstream_error", "could not load books", nil)
		return
	}

	meta := map[string]any{"state": pager.State().String()}
	if pager.HasMore() {
		meta["next_cursor"] = book.EncodeCursor(pager.Cursor())
	}
	cards := book.RenderPage(pager.Records(), h.mapper(h.lang(r)))
	httpx.JSONSuccessWithRequest(r, w, cards, meta)
}
