package book

import (
	"errors"
	"sync"
)

var (
	// ErrPagerBusy is returned by Begin while a page is still loading.
	ErrPagerBusy = errors.New("pager: page already loading")
	// ErrPagerDone is returned by Begin once the pager is exhausted or failed.
	ErrPagerDone = errors.New("pager: no more pages")
)

// PagerState is the pagination state of one list view.
type PagerState int

const (
	PagerIdle PagerState = iota
	PagerLoading
	PagerLoaded
	PagerExhausted
	PagerFailed
)

func (s PagerState) String() string {
	switch s {
	case PagerIdle:
		return "idle"
	case PagerLoading:
		return "loading"
	case PagerLoaded:
		return "loaded"
	case PagerExhausted:
		return "exhausted"
	case PagerFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket is handed out by Begin and must be presented to Complete or Fail.
// A ticket from an older generation is ignored.
type Ticket struct {
	Generation uint64
	Cursor     Cursor
}

// Pager accumulates the pages of one query. Exhausted and Failed are
// terminal until Reset.
type Pager struct {
	mu         sync.Mutex
	state      PagerState
	cursor     Cursor
	generation uint64
	records    []Record
	pages      int
	err        error
}

// NewPager starts an idle pager at the first page of query.
func NewPager(query string, pageSize int) *Pager {
	return ResumePager(NewCursor(query, pageSize))
}

// ResumePager starts an idle pager at c.
func ResumePager(c Cursor) *Pager {
	return &Pager{cursor: c}
}

// Begin moves Idle or Loaded to Loading and returns the ticket for the fetch.
func (p *Pager) Begin() (Ticket, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case PagerIdle, PagerLoaded:
		p.state = PagerLoading
		return Ticket{Generation: p.generation, Cursor: p.cursor}, nil
	case PagerLoading:
		return Ticket{}, ErrPagerBusy
	default:
		return Ticket{}, ErrPagerDone
	}
}

// Complete appends a fetched page, truncated to the page size. A short page
// ends pagination. It reports false when the ticket is stale and nothing
// changed.
func (p *Pager) Complete(t Ticket, records []Record) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t.Generation != p.generation || p.state != PagerLoading {
		return false
	}
	if size := p.cursor.PageSize; size > 0 && len(records) > size {
		records = records[:size]
	}
	p.records = append(p.records, records...)
	p.pages++
	p.cursor = p.cursor.Next()
	if len(records) < p.cursor.PageSize {
		p.state = PagerExhausted
	} else {
		p.state = PagerLoaded
	}
	return true
}

// Fail halts pagination with err. It reports false for a stale ticket.
func (p *Pager) Fail(t Ticket, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t.Generation != p.generation || p.state != PagerLoading {
		return false
	}
	p.state = PagerFailed
	p.err = err
	return true
}

// Reset drops everything and starts over at the first page of query.
// Tickets issued before the reset become stale.
func (p *Pager) Reset(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.state = PagerIdle
	p.cursor = NewCursor(query, p.cursor.PageSize)
	p.records = nil
	p.pages = 0
	p.err = nil
}

// State returns the current state.
func (p *Pager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// HasMore reports whether "load more" should be offered.
func (p *Pager) HasMore() bool {
	return p.State() == PagerLoaded
}

// Records returns the accumulated records in arrival order.
func (p *Pager) Records() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Record(nil), p.records...)
}

// Cursor returns the cursor of the next page to fetch.
func (p *Pager) Cursor() Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Pages returns the number of successfully fetched pages.
func (p *Pager) Pages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pages
}

// Err returns the error that failed the pager, if any.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
