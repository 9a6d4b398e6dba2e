package web

import (
	"net/http"
	"strconv"

	"bookcatalog/internal/book"
	"bookcatalog/internal/observability"
)

type authorLink struct {
	Name string
	Href string
}

type homeView struct {
	Slides        []book.CardView
	Current       int
	PrevHref      string
	NextHref      string
	VisibleGenres []book.GenreCard
	MoreGenres    []book.GenreCard
	Authors       []authorLink
}

func slideHref(i int) string {
	return "/?slide=" + strconv.Itoa(i)
}

// Home renders the featured carousel, the genre grid and the popular authors.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)

	slide, err := intParam(r.URL.Query(), "slide", 0)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error.bad_request", err)
		return
	}
	params := homeParams{Slide: slide}
	if details := validateParams(params); details != nil {
		h.renderError(w, r, http.StatusBadRequest, "error.bad_request", nil)
		return
	}

	ctx := r.Context()
	m := h.mapper(lang)

	records, fallback := h.svc.Featured(ctx)
	if fallback {
		observability.FeaturedFallbackTotal.Inc()
	}
	carousel := book.NewCarousel(book.RenderPage(records, m))
	carousel.Seek(params.Slide)

	genres, err := h.svc.GenreShowcase(ctx, m)
	if err != nil {
		h.renderError(w, r, statusFor(err), "error.home", err)
		return
	}
	visible := min(book.VisibleGenres, len(genres))

	authors := book.PopularAuthors()
	links := make([]authorLink, 0, len(authors))
	for _, a := range authors {
		links = append(links, authorLink{Name: a, Href: book.AuthorHref(a)})
	}

	p := h.newPage(r, h.bundle.T(lang, "site.title"))
	p.Data = homeView{
		Slides:        carousel.Items(),
		Current:       carousel.Index(),
		PrevHref:      slideHref(carousel.PrevIndex()),
		NextHref:      slideHref(carousel.NextIndex()),
		VisibleGenres: genres[:visible],
		MoreGenres:    genres[visible:],
		Authors:       links,
	}
	if carousel.Len() > 1 && h.carouselInterval > 0 {
		p.RefreshURL = slideHref(carousel.NextIndex())
		p.RefreshSeconds = max(1, int(h.carouselInterval.Seconds()))
	}
	h.render(w, "home", http.StatusOK, p)
}
