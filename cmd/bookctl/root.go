package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bookcatalog/internal/i18n"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bookctl",
		Short: "Browse the book catalog from the terminal",
		Long: `bookctl queries the same catalog the web site shows.

Example usage:
  bookctl featured --watch          # Rotate the featured books
  bookctl search tolkien            # First page of a free-text search
  bookctl search --genre Historia   # Books of a predefined genre
  bookctl search --author "Jane Austen" --pages 2
  bookctl show zyTCAlFPjgYC         # Details of one book
  bookctl show zyTCAlFPjgYC --offline
  bookctl genres                    # Predefined genres
  bookctl authors                   # Popular authors
  bookctl mirror ls --prefix har    # Records mirrored in Postgres`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			bundle, err := i18n.Default("es")
			if err != nil {
				return err
			}
			a.bundle = bundle
			a.lang = bundle.Resolve(a.lang)
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.lang, "lang", "es", "output language (es, en)")

	root.AddCommand(
		newFeaturedCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newGenresCmd(a),
		newAuthorsCmd(a),
		newMirrorCmd(a),
	)
	return root
}
