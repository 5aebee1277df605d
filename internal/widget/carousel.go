package widget

import "sync"

// Carousel is a read pointer over a fixed number of items that wraps in both
// directions. A zero-length carousel stays at index 0.
type Carousel struct {
	mu     sync.Mutex
	index  int
	length int
}

// NewCarousel creates a carousel over length items starting at index 0
func NewCarousel(length int) *Carousel {
	if length < 0 {
		length = 0
	}
	return &Carousel{length: length}
}

// Next advances one item, wrapping from the last to the first
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.length > 0 {
		c.index = (c.index + 1) % c.length
	}
	return c.index
}

// Previous steps back one item, wrapping from the first to the last
func (c *Carousel) Previous() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.length > 0 {
		c.index = (c.index - 1 + c.length) % c.length
	}
	return c.index
}

// Index returns the current position
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of items
func (c *Carousel) Len() int {
	return c.length
}
