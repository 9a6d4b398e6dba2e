package book

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// PlaceholderCover is served when a record has no cover image.
	PlaceholderCover = "/assets/img/default-cover.svg"
	// UnknownAuthor is the fallback label when no localized one is supplied.
	UnknownAuthor = "Autor desconocido"
)

// CardModel holds the fields a card or detail view reads from a Record.
type CardModel struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	AuthorsLine string  `json:"authors"`
	CoverURL    string  `json:"cover_url"`
	Rating      float64 `json:"rating"`
}

// CardView is a rendered card: the model plus its stars and link target.
type CardView struct {
	CardModel
	Stars [MaxStars]Star `json:"-"`
	Href  string         `json:"href"`
}

// RatingLabel formats the rating with one decimal, as shown next to the stars.
func (c CardModel) RatingLabel() string {
	return fmt.Sprintf("%.1f", c.Rating)
}

// Mapper converts records into view models. The zero value is usable.
type Mapper struct {
	UnknownAuthor    string
	PlaceholderCover string
}

// ToCardModel maps r. Missing fields resolve to defaults; it never fails.
func (m Mapper) ToCardModel(r Record) CardModel {
	return CardModel{
		ID:          r.ID,
		Title:       r.VolumeInfo.Title,
		AuthorsLine: m.authorsLine(r.VolumeInfo.Authors),
		CoverURL:    m.coverURL(r.VolumeInfo.ImageLinks),
		Rating:      r.Rating(),
	}
}

func (m Mapper) authorsLine(authors []string) string {
	if len(authors) > 0 {
		return strings.Join(authors, ", ")
	}
	if m.UnknownAuthor != "" {
		return m.UnknownAuthor
	}
	return UnknownAuthor
}

func (m Mapper) coverURL(links *ImageLinks) string {
	if links != nil {
		if links.Thumbnail != "" {
			return links.Thumbnail
		}
		if links.SmallThumbnail != "" {
			return links.SmallThumbnail
		}
	}
	if m.PlaceholderCover != "" {
		return m.PlaceholderCover
	}
	return PlaceholderCover
}

// DetailHref is the link a card navigates to.
func DetailHref(id string) string {
	return "/book?id=" + url.QueryEscape(id)
}

// RenderPage turns records into cards, keeping arrival order.
func RenderPage(records []Record, m Mapper) []CardView {
	cards := make([]CardView, 0, len(records))
	for _, r := range records {
		model := m.ToCardModel(r)
		cards = append(cards, CardView{
			CardModel: model,
			Stars:     StarsFor(model.Rating),
			Href:      DetailHref(r.ID),
		})
	}
	return cards
}
