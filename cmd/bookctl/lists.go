package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"bookcatalog/internal/book"
)

func newGenresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the predefined genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genres := book.Genres()
			if a.jsonOut {
				return writeJSON(a.out, genres)
			}
			rows := make([][]string, 0, len(genres))
			for i, g := range genres {
				shown := "yes"
				if i >= book.VisibleGenres {
					shown = ""
				}
				rows = append(rows, []string{g.Name, g.Term, shown})
			}
			heading(a.out, a.t("home.genres"))
			return renderTable(a.out, []string{"Genre", "Term", "Home"}, rows)
		},
	}
}

func newAuthorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List the popular authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authors := book.PopularAuthors()
			if a.jsonOut {
				return writeJSON(a.out, authors)
			}
			rows := make([][]string, 0, len(authors))
			for i, name := range authors {
				rows = append(rows, []string{strconv.Itoa(i + 1), name, book.AuthorQuery(name)})
			}
			heading(a.out, a.t("home.authors"))
			return renderTable(a.out, []string{"#", "Author", "Query"}, rows)
		},
	}
}
