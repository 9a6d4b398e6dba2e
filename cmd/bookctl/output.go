package main

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/microcosm-cc/bluemonday"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"bookcatalog/internal/book"
)

var plainText = bluemonday.StrictPolicy()

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func heading(w io.Writer, title string) {
	color.New(color.FgWhite, color.Bold).Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", len([]rune(title))))
}

func starsColored(rating float64) string {
	var b strings.Builder
	for _, s := range book.StarsFor(rating) {
		switch s {
		case book.StarFull:
			b.WriteString(color.YellowString(s.Glyph()))
		case book.StarHalf:
			b.WriteString(color.New(color.FgYellow, color.Faint).Sprint(s.Glyph()))
		default:
			b.WriteString(s.Glyph())
		}
	}
	fmt.Fprintf(&b, " (%.1f)", rating)
	return b.String()
}

// descriptionText flattens the HTML description the volumes API returns.
func descriptionText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(raw)))
}
