// Package pager keeps a table view's page, ordering, and filters
// mutually consistent, and rejects fetch results that were issued
// against parameters the user has since moved past.
package pager

import "sync"

// Order is a sort selection: a column path (as the query layer
// understands it) and a direction.
type Order struct {
	Column    string
	Ascending bool
}

// Filters are the filterable dimensions of a credit table. Zero
// values mean "unset".
type Filters struct {
	Year     int
	ArtistID string
	AlbumID  string
}

// Params is the full parameter tuple a fetch is issued with. It is
// comparable, which is what makes stale-result detection a simple
// equality check.
type Params struct {
	Page     int
	PageSize int
	Order    Order
	Filters  Filters
}

// New returns a Pager on page 1 with the given fixed page size and
// default order.
func New(pageSize int, defaultOrder Order) *Pager {
	return &Pager{
		params: Params{
			Page:     1,
			PageSize: pageSize,
			Order:    defaultOrder,
		},
		defaultOrder: defaultOrder,
		lastCount:    -1,
	}
}

// Pager is safe for concurrent use. Every transition leaves the
// parameter tuple consistent before it returns, so a fetch issued
// immediately after a transition never sees a half-applied state.
type Pager struct {
	mu           sync.Mutex
	params       Params
	defaultOrder Order

	// row count of the last applied fetch; -1 until one applies
	lastCount int
}

// Params returns the current parameter tuple. Issue fetches with this
// snapshot and hand it back to Apply with the results.
func (p *Pager) Params() Params {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params
}

// Apply reports whether results fetched with the issued tuple are
// still current. Stale results (the user changed page, order, or
// filters while the fetch was in flight) are rejected and must be
// discarded. Applied row counts feed the end-of-data heuristic.
func (p *Pager) Apply(issued Params, rowCount int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if issued != p.params {
		return false
	}
	p.lastCount = rowCount
	return true
}

// Current reports whether the issued tuple still matches the live
// parameters, without recording anything. Use it for responses that
// carry no rows, like fetch errors; an errored fetch must not look
// like a short final page.
func (p *Pager) Current(issued Params) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return issued == p.params
}

// SetYear sets the release-year filter and resets to page 1. A zero
// year clears the filter.
func (p *Pager) SetYear(year int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Filters.Year = year
	p.resetPage()
}

// SetArtist sets the artist filter and resets to page 1. An empty id
// clears the filter.
func (p *Pager) SetArtist(artistID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Filters.ArtistID = artistID
	p.resetPage()
}

// SetAlbum sets the album filter and resets to page 1. An empty id
// clears the filter.
func (p *Pager) SetAlbum(albumID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Filters.AlbumID = albumID
	p.resetPage()
}

// ClearFilters drops every filter and resets to page 1.
func (p *Pager) ClearFilters() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Filters = Filters{}
	p.resetPage()
}

// ToggleSort selects a sort column. Re-selecting the current column
// flips its direction; a new column starts descending. Either way the
// view is back on page 1.
func (p *Pager) ToggleSort(column string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.params.Order.Column == column {
		p.params.Order.Ascending = !p.params.Order.Ascending
	} else {
		p.params.Order = Order{Column: column, Ascending: false}
	}
	p.resetPage()
}

// ResetSort restores the default order and resets to page 1.
func (p *Pager) ResetSort() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Order = p.defaultOrder
	p.resetPage()
}

func (p *Pager) NextPage() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params.Page++
	p.lastCount = -1
}

// PrevPage decrements the page, floored at 1.
func (p *Pager) PrevPage() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.params.Page > 1 {
		p.params.Page--
	}
	p.lastCount = -1
}

// CanPrev reports whether a previous page exists.
func (p *Pager) CanPrev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params.Page > 1
}

// CanNext reports whether another page might exist. There is no total
// count for this view: a short page is the end-of-data signal, and an
// unapplied fetch counts as "unknown, allow it".
func (p *Pager) CanNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastCount < 0 {
		return true
	}
	return p.lastCount >= p.params.PageSize
}

func (p *Pager) resetPage() {
	p.params.Page = 1
	p.lastCount = -1
}
