package book

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("book not found")
	// ErrMissingID is returned when a detail lookup is issued without an id.
	ErrMissingID = errors.New("book id is required")
)

// Record is one catalog entry. It mirrors the volume resource of the remote
// catalog API so it can be decoded straight from the wire and re-encoded for
// caching without loss.
type Record struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the descriptive fields of a Record. Every field is optional
// on the wire.
type VolumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors,omitempty"`
	ImageLinks    *ImageLinks `json:"imageLinks,omitempty"`
	AverageRating float64     `json:"averageRating,omitempty"`
	PublishedDate string      `json:"publishedDate,omitempty"`
	PageCount     int         `json:"pageCount,omitempty"`
	Description   string      `json:"description,omitempty"`
}

// ImageLinks carries the two cover resolutions the views use.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

// Rating returns the average rating, 0 when the API omitted it.
func (r Record) Rating() float64 {
	return r.VolumeInfo.AverageRating
}

// PublishedYear returns the year part of the published date ("2004-05-12",
// "2004-05" and "2004" all yield "2004"). Empty when the date is absent or
// does not start with a year.
func (r Record) PublishedYear() string {
	d := strings.TrimSpace(r.VolumeInfo.PublishedDate)
	if len(d) < 4 {
		return ""
	}
	for _, c := range d[:4] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return d[:4]
}

// Theme is the site color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the theme named by s, defaulting to light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
