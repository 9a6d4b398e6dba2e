package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bookcatalog/internal/book"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		genre  string
		author string
		pages  int
	)
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "List books for a term, genre or author",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			q := book.SearchQuery{Genre: genre, Author: author}
			if len(args) == 1 {
				q.Term = args[0]
			}
			pager, err := svc.Browse(cmd.Context(), q, pages)
			if err != nil {
				return err
			}

			cards := book.RenderPage(pager.Records(), a.mapper())
			if a.jsonOut {
				return writeJSON(a.out, map[string]any{
					"query": q.String(),
					"state": pager.State().String(),
					"books": cards,
				})
			}

			title := a.t("list.all")
			if h := q.Heading(); h != "" {
				title = a.bundle.Tf(a.lang, "list.of", h)
			}
			heading(a.out, title)

			if len(cards) == 0 {
				fmt.Fprintln(a.out, a.t("list.empty"))
				return nil
			}
			rows := make([][]string, 0, len(cards))
			for i, c := range cards {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					c.ID,
					truncate(c.Title, 60),
					truncate(c.AuthorsLine, 40),
					starsColored(c.Rating),
				})
			}
			if err := renderTable(a.out, []string{"#", "ID", "Title", "Authors", "Rating"}, rows); err != nil {
				return err
			}
			if pager.HasMore() {
				fmt.Fprintf(a.out, "\n%s\n", a.bundle.Tf(a.lang, "cli.more_results", pager.Pages()+1))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "genre name, e.g. Historia")
	cmd.Flags().StringVar(&author, "author", "", "exact author name")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
