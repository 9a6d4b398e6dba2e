package web

import (
	"net/http"
	"net/url"
	"strconv"

	"bookcatalog/internal/book"
)

// cardItem is what the card partial renders.
type cardItem struct {
	Card  book.CardView
	Label string
}

type listView struct {
	Cards        []cardItem
	LoadMoreHref string
	NextCursor   string
}

// List renders the results of a genre, author or free-text query. The page
// parameter asks for that many pages to be accumulated.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	query := r.URL.Query()

	pageNum, err := intParam(query, "page", 1)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error.bad_request", err)
		return
	}
	params := listParams{
		Genre:  stringParam(query, "genre"),
		Search: stringParam(query, "search"),
		Author: stringParam(query, "author"),
		Page:   pageNum,
	}
	if details := validateParams(params); details != nil {
		h.renderError(w, r, http.StatusBadRequest, "error.bad_request", nil)
		return
	}

	q := book.SearchQuery{Term: params.Search, Genre: params.Genre, Author: params.Author}
	pager, err := h.svc.Browse(r.Context(), q, params.Page)
	if err != nil {
		h.renderError(w, r, statusFor(err), "error.list", err)
		return
	}

	title := h.bundle.T(lang, "list.all")
	if heading := q.Heading(); heading != "" {
		title = h.bundle.Tf(lang, "list.of", heading)
	}

	var view listView
	label := h.bundle.T(lang, "book.view")
	for _, c := range book.RenderPage(pager.Records(), h.mapper(lang)) {
		view.Cards = append(view.Cards, cardItem{Card: c, Label: label})
	}
	if pager.HasMore() {
		view.NextCursor = book.EncodeCursor(pager.Cursor())
		if pager.Pages() < h.svc.MaxPages() {
			view.LoadMoreHref = listHref(params, pager.Pages()+1)
		}
	}

	p := h.newPage(r, title)
	p.Data = view
	h.render(w, "list", http.StatusOK, p)
}

func listHref(params listParams, pageNum int) string {
	v := url.Values{}
	if params.Genre != "" {
		v.Set("genre", params.Genre)
	}
	if params.Search != "" {
		v.Set("search", params.Search)
	}
	if params.Author != "" {
		v.Set("author", params.Author)
	}
	v.Set("page", strconv.Itoa(pageNum))
	return "/list?" + v.Encode()
}
