package book

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTerm is searched when a list view names neither genre nor author.
const DefaultTerm = "bestseller"

// VisibleGenres is how many genres the home grid shows before expanding.
const VisibleGenres = 8

//go:embed catalog.yaml
var catalogYAML []byte

// Genre pairs a display name with the search term sent upstream.
type Genre struct {
	Name string `yaml:"name"`
	Term string `yaml:"term"`
}

type catalogFile struct {
	Genres  []Genre  `yaml:"genres"`
	Authors []string `yaml:"authors"`
}

var catalogData = mustParseCatalog(catalogYAML)

func mustParseCatalog(raw []byte) catalogFile {
	c, err := parseCatalog(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func parseCatalog(raw []byte) (catalogFile, error) {
	var c catalogFile
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return catalogFile{}, fmt.Errorf("parse catalog: %w", err)
	}
	for i, g := range c.Genres {
		if g.Name == "" || g.Term == "" {
			return catalogFile{}, fmt.Errorf("parse catalog: genre %d needs name and term", i)
		}
	}
	return c, nil
}

// Genres returns the predefined genre table in display order.
func Genres() []Genre {
	return append([]Genre(nil), catalogData.Genres...)
}

// PopularAuthors returns the curated author list in display order.
func PopularAuthors() []string {
	return append([]string(nil), catalogData.Authors...)
}

// GenreTerm looks up the search term for a genre display name.
func GenreTerm(name string) (string, bool) {
	for _, g := range catalogData.Genres {
		if strings.EqualFold(g.Name, name) {
			return g.Term, true
		}
	}
	return "", false
}

// SearchQuery is what a list view asks for: a free-text term plus the
// optional genre and author modifiers from the navigation parameters.
type SearchQuery struct {
	Term   string
	Genre  string
	Author string
}

// String resolves the query into the term sent upstream. A genre with an
// explicit term wins, then an exact-author match, then a genre looked up in
// the genre table, then the bare term, then DefaultTerm.
func (q SearchQuery) String() string {
	term := strings.TrimSpace(q.Term)
	genre := strings.TrimSpace(q.Genre)
	author := strings.TrimSpace(q.Author)

	switch {
	case genre != "" && term != "":
		return term
	case author != "":
		return AuthorQuery(author)
	case genre != "":
		if t, ok := GenreTerm(genre); ok {
			return t
		}
		return genre
	case term != "":
		return term
	default:
		return DefaultTerm
	}
}

// Heading names what the list shows; empty means "all books".
func (q SearchQuery) Heading() string {
	if g := strings.TrimSpace(q.Genre); g != "" {
		return g
	}
	return strings.TrimSpace(q.Author)
}

// AuthorQuery builds the exact-author modifier for name.
func AuthorQuery(name string) string {
	return `inauthor:"` + strings.ReplaceAll(name, `"`, "") + `"`
}
