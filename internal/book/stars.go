package book

import (
	"math"
	"strings"
)

// Star is one slot of a rating display.
type Star int

const (
	StarEmpty Star = iota
	StarHalf
	StarFull
)

// MaxStars is the number of slots in every rating display.
const MaxStars = 5

func (s Star) String() string {
	switch s {
	case StarFull:
		return "full"
	case StarHalf:
		return "half"
	default:
		return "empty"
	}
}

// Glyph is the character drawn for the slot. Half and empty slots share
// the outline glyph; renderers tell them apart by styling.
func (s Star) Glyph() string {
	if s == StarFull {
		return "★"
	}
	return "☆"
}

// StarsLine draws all slots of rating as one string.
func StarsLine(rating float64) string {
	var b strings.Builder
	for _, s := range StarsFor(rating) {
		b.WriteString(s.Glyph())
	}
	return b.String()
}

// StarsFor renders rating (0.0–5.0) into full, then at most one half, then
// empty slots. Ratings outside the range are a caller error.
func StarsFor(rating float64) [MaxStars]Star {
	full, half, _ := CountStars(rating)

	var out [MaxStars]Star
	for i := range out {
		switch {
		case i < full:
			out[i] = StarFull
		case i < full+half:
			out[i] = StarHalf
		default:
			out[i] = StarEmpty
		}
	}
	return out
}

// CountStars returns how many full, half and empty slots rating takes.
func CountStars(rating float64) (full, half, empty int) {
	full = int(math.Floor(rating))
	if math.Mod(rating, 1) >= 0.5 {
		half = 1
	}
	empty = MaxStars - full - half
	return full, half, empty
}
