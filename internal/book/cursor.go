package book

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidCursor is returned when a cursor token cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// MaxPageSize is the largest page the upstream search accepts.
const MaxPageSize = 40

// Cursor identifies the next page of a list view.
type Cursor struct {
	Query      string `json:"q"`
	PageSize   int    `json:"n"`
	StartIndex int    `json:"s"`
}

// NewCursor returns the cursor for the first page of query.
func NewCursor(query string, pageSize int) Cursor {
	return Cursor{Query: query, PageSize: pageSize}
}

// Next returns the cursor one page further on.
func (c Cursor) Next() Cursor {
	c.StartIndex += c.PageSize
	return c
}

// Page returns the 1-based page number the cursor points at.
func (c Cursor) Page() int {
	if c.PageSize <= 0 {
		return 1
	}
	return c.StartIndex/c.PageSize + 1
}

// EncodeCursor encodes c into an opaque url-safe token.
func EncodeCursor(c Cursor) string {
	if c.Query == "" {
		return ""
	}
	jsonBytes, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, ErrInvalidCursor
	}

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(decoded, &c); err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	if c.Query == "" || c.PageSize <= 0 || c.PageSize > MaxPageSize || c.StartIndex < 0 {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
