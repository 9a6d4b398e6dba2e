package book

import (
	"context"
	"sync"
	"time"
)

// DefaultCarouselInterval is how often the carousel advances on its own.
const DefaultCarouselInterval = 5 * time.Second

// FeaturedCount bounds the number of carousel slides.
const FeaturedCount = 5

// Carousel is a cyclic slideshow over a fixed set of items. Manual and
// automatic transitions may interleave; the last one wins.
type Carousel[T any] struct {
	mu    sync.Mutex
	items []T
	index int
}

// NewCarousel returns a carousel positioned on the first item.
func NewCarousel[T any](items []T) *Carousel[T] {
	return &Carousel[T]{items: append([]T(nil), items...)}
}

// Len returns the number of items.
func (c *Carousel[T]) Len() int {
	return len(c.items)
}

// Index returns the current position.
func (c *Carousel[T]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the item at the current position. ok is false when the
// carousel is empty.
func (c *Carousel[T]) Current() (item T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return item, false
	}
	return c.items[c.index], true
}

// Items returns the slides in order.
func (c *Carousel[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// PrevIndex returns the position Prev would move to.
func (c *Carousel[T]) PrevIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wrap(c.index - 1)
}

// NextIndex returns the position Next would move to.
func (c *Carousel[T]) NextIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wrap(c.index + 1)
}

// Prev moves one slide back, wrapping to the last.
func (c *Carousel[T]) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = c.wrap(c.index - 1)
	return c.index
}

// Next moves one slide forward, wrapping to the first.
func (c *Carousel[T]) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = c.wrap(c.index + 1)
	return c.index
}

// Seek jumps to position i, taken modulo the item count.
func (c *Carousel[T]) Seek(i int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = c.wrap(i)
	return c.index
}

func (c *Carousel[T]) wrap(i int) int {
	n := len(c.items)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// AutoAdvance calls Next every interval until ctx is done. onAdvance, when
// not nil, receives each new index.
func (c *Carousel[T]) AutoAdvance(ctx context.Context, interval time.Duration, onAdvance func(int)) {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			i := c.Next()
			if onAdvance != nil {
				onAdvance(i)
			}
		}
	}
}
