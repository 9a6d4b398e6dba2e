package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_ToCardModel(t *testing.T) {
	m := Mapper{UnknownAuthor: "Unknown author"}

	t.Run("full record", func(t *testing.T) {
		r := Record{
			ID: "zyTCAlFPjgYC",
			VolumeInfo: VolumeInfo{
				Title:         "The Google Story",
				Authors:       []string{"David A. Vise", "Mark Malseed"},
				ImageLinks:    &ImageLinks{SmallThumbnail: "http://img/small", Thumbnail: "http://img/thumb"},
				AverageRating: 3.5,
			},
		}

		card := m.ToCardModel(r)
		assert.Equal(t, "zyTCAlFPjgYC", card.ID)
		assert.Equal(t, "The Google Story", card.Title)
		assert.Equal(t, "David A. Vise, Mark Malseed", card.AuthorsLine)
		assert.Equal(t, "http://img/thumb", card.CoverURL)
		assert.Equal(t, 3.5, card.Rating)
		assert.Equal(t, "3.5", card.RatingLabel())
	})

	t.Run("small thumbnail fallback", func(t *testing.T) {
		card := m.ToCardModel(Record{VolumeInfo: VolumeInfo{ImageLinks: &ImageLinks{SmallThumbnail: "http://img/small"}}})
		assert.Equal(t, "http://img/small", card.CoverURL)
	})

	t.Run("missing optional fields", func(t *testing.T) {
		card := m.ToCardModel(Record{ID: "x", VolumeInfo: VolumeInfo{Title: "Untitled"}})
		assert.Equal(t, "Unknown author", card.AuthorsLine)
		assert.Equal(t, PlaceholderCover, card.CoverURL)
		assert.Zero(t, card.Rating)
		assert.Equal(t, "0.0", card.RatingLabel())
	})

	t.Run("zero value mapper", func(t *testing.T) {
		card := Mapper{}.ToCardModel(Record{VolumeInfo: VolumeInfo{Authors: []string{}}})
		assert.Equal(t, UnknownAuthor, card.AuthorsLine)
		assert.NotEmpty(t, card.AuthorsLine)
	})
}

func TestRenderPage(t *testing.T) {
	records := []Record{
		{ID: "b", VolumeInfo: VolumeInfo{Title: "Second", AverageRating: 4.5}},
		{ID: "a", VolumeInfo: VolumeInfo{Title: "First"}},
		{ID: "a", VolumeInfo: VolumeInfo{Title: "First"}},
	}

	cards := RenderPage(records, Mapper{})
	require.Len(t, cards, 3)
	assert.Equal(t, "Second", cards[0].Title)
	assert.Equal(t, "/book?id=b", cards[0].Href)
	assert.Equal(t, StarHalf, cards[0].Stars[4])
	assert.Equal(t, "a", cards[1].ID)
	assert.Equal(t, "a", cards[2].ID)
}

func TestDetailHref(t *testing.T) {
	assert.Equal(t, "/book?id=a%26b", DetailHref("a&b"))
}
