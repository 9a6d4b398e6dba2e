package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_String(t *testing.T) {
	tests := []struct {
		name  string
		query SearchQuery
		want  string
	}{
		{"genre with term", SearchQuery{Genre: "Historia", Term: "history"}, "history"},
		{"genre from table", SearchQuery{Genre: "Historia"}, "history"},
		{"genre case insensitive", SearchQuery{Genre: "ciencia ficción"}, "science fiction"},
		{"unknown genre", SearchQuery{Genre: "poetry"}, "poetry"},
		{"author", SearchQuery{Author: "Jane Austen"}, `inauthor:"Jane Austen"`},
		{"author beats bare genre", SearchQuery{Author: "Jane Austen", Genre: "Historia"}, `inauthor:"Jane Austen"`},
		{"free text", SearchQuery{Term: "dune"}, "dune"},
		{"nothing", SearchQuery{}, DefaultTerm},
		{"whitespace only", SearchQuery{Term: "  "}, DefaultTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.String())
		})
	}
}

func TestSearchQuery_Heading(t *testing.T) {
	assert.Equal(t, "Arte", SearchQuery{Genre: "Arte", Term: "art"}.Heading())
	assert.Equal(t, "Harper Lee", SearchQuery{Author: "Harper Lee"}.Heading())
	assert.Empty(t, SearchQuery{Term: "x"}.Heading())
}

func TestAuthorQuery_StripsQuotes(t *testing.T) {
	assert.Equal(t, `inauthor:"Bad Name"`, AuthorQuery(`Bad "Name"`))
}

func TestCatalogTable(t *testing.T) {
	genres := Genres()
	require.Len(t, genres, 16)
	assert.Equal(t, Genre{Name: "Ficción", Term: "fiction"}, genres[0])
	assert.Equal(t, "Deportes", genres[15].Name)

	authors := PopularAuthors()
	require.Len(t, authors, 15)
	assert.Equal(t, "J.K. Rowling", authors[0])
	assert.Equal(t, "Harper Lee", authors[14])

	term, ok := GenreTerm("Música")
	assert.True(t, ok)
	assert.Equal(t, "music", term)

	_, ok = GenreTerm("Nope")
	assert.False(t, ok)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := parseCatalog([]byte("genres:\n  - name: X\n"))
	assert.Error(t, err)

	_, err = parseCatalog([]byte("genres: ["))
	assert.Error(t, err)
}

func TestRecord_PublishedYear(t *testing.T) {
	assert.Equal(t, "2004", Record{VolumeInfo: VolumeInfo{PublishedDate: "2004-05-12"}}.PublishedYear())
	assert.Equal(t, "1999", Record{VolumeInfo: VolumeInfo{PublishedDate: "1999"}}.PublishedYear())
	assert.Empty(t, Record{VolumeInfo: VolumeInfo{PublishedDate: "n.d."}}.PublishedYear())
	assert.Empty(t, Record{}.PublishedYear())
}

func TestTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("neon"))
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}
