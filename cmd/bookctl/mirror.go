package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bookcatalog/internal/book"
)

func newMirrorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Inspect records mirrored in Postgres",
	}

	var (
		prefix string
		limit  int
	)
	ls := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List mirrored records, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mirror, err := a.openMirror(cmd.Context())
			if err != nil {
				return err
			}
			records, err := mirror.ListRecords(cmd.Context(), prefix, limit)
			if err != nil {
				return err
			}

			cards := book.RenderPage(records, a.mapper())
			if a.jsonOut {
				return writeJSON(a.out, cards)
			}
			if len(cards) == 0 {
				fmt.Fprintln(a.out, a.t("cli.mirror_empty"))
				return nil
			}
			rows := make([][]string, 0, len(cards))
			for _, c := range cards {
				rows = append(rows, []string{c.ID, truncate(c.Title, 60), truncate(c.AuthorsLine, 40)})
			}
			return renderTable(a.out, []string{"ID", "Title", "Authors"}, rows)
		},
	}
	ls.Flags().StringVar(&prefix, "prefix", "", "title prefix, case-insensitive")
	ls.Flags().IntVar(&limit, "limit", 20, "maximum number of records")

	cmd.AddCommand(ls, newMirrorWarmCmd(a))
	return cmd
}

// warmResult is the outcome for one genre.
type warmResult struct {
	Genre   string `json:"genre"`
	Fetched int    `json:"fetched"`
	Saved   int    `json:"saved"`
	Error   string `json:"error,omitempty"`
}

func newMirrorWarmCmd(a *app) *cobra.Command {
	var perGenre int
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Fetch the first records of every genre into the mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			catalog, err := a.catalogClient()
			if err != nil {
				return err
			}
			mirror, err := a.openMirror(ctx)
			if err != nil {
				return err
			}

			results := warmMirror(ctx, catalog, mirror, book.Genres(), perGenre)
			if a.jsonOut {
				return writeJSON(a.out, results)
			}

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				status := color.GreenString("ok")
				if r.Error != "" {
					status = color.RedString(r.Error)
					failed++
				}
				rows = append(rows, []string{r.Genre, strconv.Itoa(r.Fetched), strconv.Itoa(r.Saved), status})
			}
			if err := renderTable(a.out, []string{"Genre", "Fetched", "Saved", "Status"}, rows); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d genres failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&perGenre, "per-genre", 10, "records to fetch per genre (1-40)")
	return cmd
}

// warmMirror saves up to perGenre records of each genre. A failing genre
// does not stop the others; a cancelled context does.
func warmMirror(ctx context.Context, catalog book.Catalog, mirror book.Mirror, genres []book.Genre, perGenre int) []warmResult {
	perGenre = max(1, min(perGenre, 40))

	results := make([]warmResult, 0, len(genres))
	for _, g := range genres {
		if ctx.Err() != nil {
			break
		}
		res := warmResult{Genre: g.Name}
		records, err := catalog.SearchBooks(ctx, g.Term, perGenre, 0)
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		res.Fetched = len(records)
		for _, rec := range records {
			if err := mirror.SaveRecord(ctx, rec); err != nil {
				res.Error = err.Error()
				continue
			}
			res.Saved++
		}
		results = append(results, res)
	}
	return results
}
