package book

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrStalePage is returned when a page arrived for a pager that was reset
// while the fetch was in flight.
var ErrStalePage = errors.New("page arrived after reset")

// Config tunes the page orchestration.
type Config struct {
	PageSize      int
	FeaturedTerm  string
	FeaturedCount int
	MaxPages      int
	GenreWorkers  int
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = 12
	}
	if c.FeaturedTerm == "" {
		c.FeaturedTerm = DefaultTerm
	}
	if c.FeaturedCount <= 0 {
		c.FeaturedCount = FeaturedCount
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 10
	}
	if c.GenreWorkers <= 0 {
		c.GenreWorkers = 4
	}
	return c
}

// Service provides the data each page needs.
type Service struct {
	catalog Catalog
	mirror  Mirror
	logger  *zap.Logger
	cfg     Config
}

// NewService creates a new page service. mirror may be nil.
func NewService(catalog Catalog, mirror Mirror, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalog,
		mirror:  mirror,
		logger:  logger,
		cfg:     cfg.withDefaults(),
	}
}

// PageSize returns the configured list page size.
func (s *Service) PageSize() int { return s.cfg.PageSize }

// MaxPages returns how many pages a single list request may accumulate.
func (s *Service) MaxPages() int { return s.cfg.MaxPages }

// Featured returns the carousel records. When the catalog fails it returns
// the sample records and fallback=true.
func (s *Service) Featured(ctx context.Context) (records []Record, fallback bool) {
	records, err := s.catalog.SearchBooks(ctx, s.cfg.FeaturedTerm, s.cfg.FeaturedCount, 0)
	if err != nil {
		s.logger.Warn("featured books unavailable, using samples", zap.Error(err))
		return SampleRecords(), true
	}
	if len(records) > s.cfg.FeaturedCount {
		records = records[:s.cfg.FeaturedCount]
	}
	return records, false
}

// GenreCard is one tile of the home genre grid.
type GenreCard struct {
	Genre    Genre
	CoverURL string
	Href     string
}

// GenreHref links to the list view of g.
func GenreHref(g Genre) string {
	v := url.Values{}
	v.Set("genre", g.Name)
	v.Set("search", g.Term)
	return "/list?" + v.Encode()
}

// AuthorHref links to the list view of an author.
func AuthorHref(name string) string {
	return "/list?author=" + url.QueryEscape(name)
}

// GenreShowcase builds a tile per predefined genre, each with the cover of
// one representative record. A genre whose lookup fails keeps the
// placeholder cover.
func (s *Service) GenreShowcase(ctx context.Context, m Mapper) ([]GenreCard, error) {
	genres := Genres()
	cards := make([]GenreCard, len(genres))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.GenreWorkers)
	for i, genre := range genres {
		g.Go(func() error {
			cards[i] = GenreCard{
				Genre:    genre,
				CoverURL: m.coverURL(nil),
				Href:     GenreHref(genre),
			}
			records, err := s.catalog.SearchBooks(gctx, genre.Term, 1, 0)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.logger.Debug("genre cover lookup failed", zap.String("genre", genre.Name), zap.Error(err))
				return nil
			}
			if len(records) > 0 {
				cards[i].CoverURL = m.ToCardModel(records[0]).CoverURL
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// Browse runs the list query and accumulates up to pages pages, stopping
// early once the results run out. On failure the pager is returned in the
// failed state together with the error.
func (s *Service) Browse(ctx context.Context, q SearchQuery, pages int) (*Pager, error) {
	pages = max(1, min(pages, s.cfg.MaxPages))

	pager := NewPager(q.String(), s.cfg.PageSize)
	for range pages {
		if err := s.LoadMore(ctx, pager); err != nil {
			return pager, err
		}
		if !pager.HasMore() {
			break
		}
	}
	return pager, nil
}

// LoadMore fetches the next page of p.
func (s *Service) LoadMore(ctx context.Context, p *Pager) error {
	ticket, err := p.Begin()
	if err != nil {
		return err
	}

	c := ticket.Cursor
	records, err := s.catalog.SearchBooks(ctx, c.Query, c.PageSize, c.StartIndex)
	if err != nil {
		p.Fail(ticket, err)
		return fmt.Errorf("load page %d of %q: %w", c.Page(), c.Query, err)
	}
	if !p.Complete(ticket, records) {
		return ErrStalePage
	}
	return nil
}

// Book fetches one record for the detail view and mirrors it when a mirror
// is configured.
func (s *Service) Book(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrMissingID
	}

	rec, err := s.catalog.GetBookByID(ctx, id)
	if err != nil {
		return Record{}, fmt.Errorf("get book %s: %w", id, err)
	}

	if s.mirror != nil {
		if err := s.mirror.SaveRecord(ctx, rec); err != nil {
			s.logger.Warn("mirror record failed", zap.String("id", rec.ID), zap.Error(err))
		}
	}
	return rec, nil
}
