package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"bookcatalog/internal/book"
)

func newFeaturedCmd(a *app) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
		rounds   int
	)
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the featured carousel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			records, fallback := svc.Featured(ctx)
			if fallback {
				fmt.Fprintln(a.errOut, "catalog unavailable, showing sample records")
			}
			cards := book.RenderPage(records, a.mapper())
			carousel := book.NewCarousel(cards)

			if a.jsonOut {
				return writeJSON(a.out, cards)
			}
			heading(a.out, a.t("home.featured"))
			printSlide(a, carousel, carousel.Index())
			if !watch || carousel.Len() < 2 {
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			shown := 0
			carousel.AutoAdvance(ctx, interval, func(i int) {
				printSlide(a, carousel, i)
				if shown++; rounds > 0 && shown >= rounds {
					cancel()
				}
			})
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "rotate the slides until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", book.DefaultCarouselInterval, "time between slides")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "stop watching after this many slides (0 = forever)")
	return cmd
}

func printSlide(a *app, c *book.Carousel[book.CardView], i int) {
	items := c.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, a.t("list.empty"))
		return
	}
	card := items[i]
	fmt.Fprintf(a.out, "[%d/%d] %s · %s · %s\n", i+1, len(items), card.Title, card.AuthorsLine, starsColored(card.Rating))
}
