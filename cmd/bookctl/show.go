package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bookcatalog/internal/book"
)

func newShowCmd(a *app) *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				rec book.Record
				err error
			)
			if offline {
				mirror, merr := a.openMirror(ctx)
				if merr != nil {
					return merr
				}
				rec, err = mirror.GetRecord(ctx, args[0])
			} else {
				svc, serr := a.service()
				if serr != nil {
					return serr
				}
				rec, err = svc.Book(ctx, args[0])
			}
			if err != nil {
				return err
			}

			if a.jsonOut {
				return writeJSON(a.out, rec)
			}
			printRecord(a, rec)
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "read from the Postgres mirror instead of the API")
	return cmd
}

func printRecord(a *app, rec book.Record) {
	card := a.mapper().ToCardModel(rec)
	label := color.New(color.Bold).SprintFunc()

	heading(a.out, card.Title)
	fmt.Fprintf(a.out, "%s %s\n", label(a.t("book.author")+":"), card.AuthorsLine)
	fmt.Fprintf(a.out, "%s %s\n", label(a.t("book.rating")+":"), starsColored(card.Rating))
	if year := rec.PublishedYear(); year != "" {
		fmt.Fprintf(a.out, "%s %s\n", label(a.t("book.published")+":"), year)
	}
	if rec.VolumeInfo.PageCount > 0 {
		fmt.Fprintf(a.out, "%s %d\n", label(a.t("book.pages")+":"), rec.VolumeInfo.PageCount)
	}
	fmt.Fprintf(a.out, "%s %s\n\n", label(a.t("book.cover")+":"), card.CoverURL)

	if desc := descriptionText(rec.VolumeInfo.Description); desc != "" {
		fmt.Fprintln(a.out, desc)
	} else {
		fmt.Fprintln(a.out, color.New(color.Faint).Sprint(a.t("book.no_description")))
	}
}
