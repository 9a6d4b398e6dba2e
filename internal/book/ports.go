package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Catalog is the remote catalog the views read from.
type Catalog interface {
	SearchBooks(ctx context.Context, query string, maxResults, startIndex int) ([]Record, error)
	GetBookByID(ctx context.Context, id string) (Record, error)
}

// Mirror keeps a local copy of records that were viewed.
type Mirror interface {
	SaveRecord(ctx context.Context, r Record) error
	GetRecord(ctx context.Context, id string) (Record, error)
}
