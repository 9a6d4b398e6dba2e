package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"bookcatalog/internal/book"
)

type detailView struct {
	Card        book.CardView
	Year        string
	PageCount   int
	Description template.HTML
}

// descriptionPolicy allows the basic formatting the volumes API puts in
// descriptions and strips everything else.
func descriptionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

func (h *Handler) sanitizeDescription(raw string) template.HTML {
	clean := strings.TrimSpace(h.policy.Sanitize(raw))
	// #nosec G203 -- sanitized by bluemonday above
	return template.HTML(clean)
}

// Detail renders one record.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)

	params := detailParams{ID: stringParam(r.URL.Query(), "id")}
	if details := validateParams(params); details != nil {
		if hasRequiredFailure(details, "id") {
			h.renderError(w, r, http.StatusBadRequest, "error.missing_id", book.ErrMissingID)
			return
		}
		h.renderError(w, r, http.StatusBadRequest, "error.bad_request", nil)
		return
	}

	rec, err := h.svc.Book(r.Context(), params.ID)
	if err != nil {
		key := "error.book"
		if errors.Is(err, book.ErrMissingID) {
			key = "error.missing_id"
		}
		h.renderError(w, r, statusFor(err), key, err)
		return
	}

	cards := book.RenderPage([]book.Record{rec}, h.mapper(lang))
	p := h.newPage(r, rec.VolumeInfo.Title)
	p.Data = detailView{
		Card:        cards[0],
		Year:        rec.PublishedYear(),
		PageCount:   rec.VolumeInfo.PageCount,
		Description: h.sanitizeDescription(rec.VolumeInfo.Description),
	}
	h.render(w, "detail", http.StatusOK, p)
}
