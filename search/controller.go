// Package search owns the typed-but-not-yet-searched query string:
// debouncing keystrokes, gating fetches on query length, and keeping
// a small persisted list of recent searches.
package search

import (
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultDelay is how long the query must hold still before a fetch
// fires.
const DefaultDelay = 300 * time.Millisecond

// MinQueryLen is the shortest settled query worth a round trip,
// counted in runes. Anything shorter settles without fetching; the
// view shows "no results" for free.
const MinQueryLen = 2

// QueryLen measures a query the way MinQueryLen counts: runes, not
// bytes, so one accented character is still one character.
func QueryLen(query string) int {
	return utf8.RuneCountInString(query)
}

// Controller tracks a raw query string and its settled (debounced)
// value. The fetch callback runs only when a settled query is at
// least MinQueryLen long, and at most once per quiet period no matter
// how fast the input changes.
type Controller struct {
	mu      sync.Mutex
	raw     string
	settled string

	deb   *Debouncer
	fetch func(query string)
}

// NewController builds a Controller firing fetch for settled queries.
// A non-positive delay gets DefaultDelay.
func NewController(delay time.Duration, fetch func(query string)) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	c := &Controller{fetch: fetch}
	c.deb = NewDebouncer(delay, c.settle)
	return c
}

// SetQuery records a keystroke's worth of change and restarts the
// quiet-period timer.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.raw = query
	c.mu.Unlock()

	c.deb.Update(query)
}

// Query returns the raw query as typed.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// Settled returns the last debounced value.
func (c *Controller) Settled() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settled
}

// Stop cancels any pending settle.
func (c *Controller) Stop() {
	c.deb.Stop()
}

func (c *Controller) settle(query string) {
	c.mu.Lock()
	c.settled = query
	c.mu.Unlock()

	if QueryLen(query) >= MinQueryLen && c.fetch != nil {
		c.fetch(query)
	}
}
