// Package tui is the interactive browse front end: a windowed
// producer list, a paginated credit table per producer, an aggregated
// connection view per artist, and a debounced cross-kind search.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linernotes/credits/data"
	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/pager"
	"github.com/linernotes/credits/search"
	"github.com/linernotes/credits/window"
)

type view int

const (
	viewProducers view = iota
	viewCredits
	viewConnections
	viewSearch
)

const (
	// producerPageSize is how many producers one list fetch pulls.
	// The windowed renderer keeps the per-frame cost flat no
	// matter how big this gets.
	producerPageSize = 500

	creditPageSize = 20
	searchLimit    = 8
	overscan       = 5
	skeletonRows   = 8

	toastDuration = 3 * time.Second
)

type Model struct {
	db      *db.DB
	recents *search.Recents

	width  int
	height int

	view    view
	loading bool
	err     error
	toast   string
	stats   db.Stats

	// producer list
	producers  []data.Producer
	cursor     int
	scrollTop  int
	producerID uint64 // requestID for producer list loads

	// credit table for the selected producer
	producer  *data.Producer
	credits   []data.Credit
	creditRow int
	pager     *pager.Pager

	// connection view for the selected artist
	artist        *data.Artist
	connections   []data.Producer
	connectionRow int
	connectionID  uint64

	// search
	input      textinput.Model
	controller *search.Controller
	settled    chan string
	results    db.SearchResults
	searchID   uint64
	lastQuery  string
}

func New(database *db.DB, recents *search.Recents) *Model {
	input := textinput.New()
	input.Placeholder = "search producers, artists, albums, tracks"
	input.CharLimit = 80

	settled := make(chan string, 1)

	m := &Model{
		db:      database,
		recents: recents,
		input:   input,
		settled: settled,
		pager: pager.New(creditPageSize, pager.Order{
			Column: "album.release_date",
		}),
	}
	m.controller = search.NewController(search.DefaultDelay, func(query string) {
		settled <- query
	})
	return m
}

// messages

type producersLoadedMsg struct {
	producers []data.Producer
	err       error
	requestID uint64
}

type creditsLoadedMsg struct {
	credits []data.Credit
	issued  pager.Params
	err     error
}

type connectionsLoadedMsg struct {
	producers []data.Producer
	err       error
	requestID uint64
}

type querySettledMsg struct{ query string }

type searchResultsMsg struct {
	results   db.SearchResults
	query     string
	requestID uint64
}

type statsMsg struct{ stats db.Stats }

type jobEnqueuedMsg struct {
	name string
	err  error
}

type toastClearMsg struct{}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitForSettled(),
		m.loadProducers(),
		m.loadStats(),
	)
}

// waitForSettled forwards the search controller's settled queries
// into the update loop. It re-arms itself from the settled handler.
func (m *Model) waitForSettled() tea.Cmd {
	return func() tea.Msg {
		return querySettledMsg{query: <-m.settled}
	}
}

// commands

func (m *Model) loadProducers() tea.Cmd {
	m.loading = true
	m.producerID++
	requestID := m.producerID
	return func() tea.Msg {
		producers, err := m.db.ListProducers(context.Background(), db.ListOptions{
			Page:      1,
			PageSize:  producerPageSize,
			OrderBy:   "name",
			Ascending: true,
		})
		return producersLoadedMsg{producers: producers, err: err, requestID: requestID}
	}
}

func (m *Model) loadCredits() tea.Cmd {
	m.loading = true
	issued := m.pager.Params()
	producerID := m.producer.ID
	return func() tea.Msg {
		credits, err := m.db.ProducerCredits(context.Background(), producerID, db.CreditOptions{
			Page:      issued.Page,
			PageSize:  issued.PageSize,
			OrderBy:   issued.Order.Column,
			Ascending: issued.Order.Ascending,
			Filters: db.CreditFilters{
				Year:     issued.Filters.Year,
				ArtistID: issued.Filters.ArtistID,
				AlbumID:  issued.Filters.AlbumID,
			},
		})
		return creditsLoadedMsg{credits: credits, issued: issued, err: err}
	}
}

func (m *Model) loadConnections(artist data.Artist) tea.Cmd {
	m.loading = true
	m.artist = &artist
	m.connectionID++
	requestID := m.connectionID
	return func() tea.Msg {
		producers, err := m.db.ArtistProducers(context.Background(), artist.ID, db.ListOptions{
			Page:     1,
			PageSize: creditPageSize,
		})
		return connectionsLoadedMsg{producers: producers, err: err, requestID: requestID}
	}
}

func (m *Model) loadSearch(query string) tea.Cmd {
	m.searchID++
	requestID := m.searchID
	return func() tea.Msg {
		results := m.db.SearchAcross(context.Background(), query, db.Kinds(), searchLimit)
		return searchResultsMsg{results: results, query: query, requestID: requestID}
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsMsg{stats: m.db.Stats(context.Background())}
	}
}

func (m *Model) enqueueDiscovery(artist data.Artist) tea.Cmd {
	return func() tea.Msg {
		payload := fmt.Sprintf(`{"artist_id":%q,"name":%q}`, artist.ID, artist.Name)
		_, err := m.db.EnqueueJob("discover-artist", payload)
		return jobEnqueuedMsg{name: artist.Name, err: err}
	}
}

func clearToast() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case producersLoadedMsg:
		return m.handleProducersLoaded(msg)

	case creditsLoadedMsg:
		return m.handleCreditsLoaded(msg)

	case connectionsLoadedMsg:
		return m.handleConnectionsLoaded(msg)

	case querySettledMsg:
		return m.handleQuerySettled(msg)

	case searchResultsMsg:
		return m.handleSearchResults(msg)

	case statsMsg:
		m.stats = msg.stats
		return m, nil

	case jobEnqueuedMsg:
		if msg.err != nil {
			m.toast = fmt.Sprintf("discovery failed: %s", msg.err)
		} else {
			m.toast = fmt.Sprintf("discovery queued for %s", msg.name)
		}
		return m, clearToast()

	case toastClearMsg:
		m.toast = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleProducersLoaded(msg producersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.producerID {
		return m, nil
	}
	m.loading = false
	m.err = msg.err
	if msg.err == nil {
		m.producers = msg.producers
		m.cursor = 0
		m.scrollTop = 0
	}
	return m, nil
}

func (m *Model) handleCreditsLoaded(msg creditsLoadedMsg) (tea.Model, tea.Cmd) {
	// results for parameters the user has moved past are discarded;
	// an error carries no row count, so it must not feed the
	// end-of-data heuristic
	if msg.err != nil {
		if !m.pager.Current(msg.issued) {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		return m, nil
	}
	if !m.pager.Apply(msg.issued, len(msg.credits)) {
		return m, nil
	}
	m.loading = false
	m.err = nil
	m.credits = msg.credits
	m.creditRow = 0
	return m, nil
}

func (m *Model) handleConnectionsLoaded(msg connectionsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.connectionID {
		return m, nil
	}
	m.loading = false
	m.err = msg.err
	if msg.err == nil {
		m.connections = msg.producers
		m.connectionRow = 0
	}
	return m, nil
}

func (m *Model) handleQuerySettled(msg querySettledMsg) (tea.Model, tea.Cmd) {
	// always re-arm the subscription
	return m, tea.Batch(m.waitForSettled(), m.loadSearch(msg.query))
}

func (m *Model) handleSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.searchID {
		return m, nil
	}
	m.results = msg.results
	m.lastQuery = msg.query

	if err := m.recents.Save(msg.query); err != nil {
		m.toast = err.Error()
		return m, clearToast()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewSearch && m.input.Focused() {
		switch msg.String() {
		case "esc":
			m.input.Blur()
			m.view = viewProducers
			return m, nil
		case "enter":
			m.input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			value := m.input.Value()
			m.controller.SetQuery(value)
			if search.QueryLen(value) < search.MinQueryLen {
				// short-circuit: no fetch, no results
				m.results = db.SearchResults{}
				m.lastQuery = value
			}
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.controller.Stop()
		return m, tea.Quit

	case "/":
		m.view = viewSearch
		m.input.Focus()
		return m, textinput.Blink

	case "esc":
		switch m.view {
		case viewConnections:
			m.view = viewCredits
		case viewCredits, viewSearch:
			m.view = viewProducers
		}
		return m, nil
	}

	switch m.view {
	case viewProducers:
		return m.handleProducersKey(msg)
	case viewCredits:
		return m.handleCreditsKey(msg)
	case viewConnections:
		return m.handleConnectionsKey(msg)
	}
	return m, nil
}

func (m *Model) handleProducersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.producers)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor -= m.listHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "pgdown":
		m.cursor += m.listHeight()
		if m.cursor > len(m.producers)-1 {
			m.cursor = len(m.producers) - 1
		}
	case "enter":
		if m.cursor < len(m.producers) {
			producer := m.producers[m.cursor]
			m.producer = &producer
			m.credits = nil
			m.pager.ClearFilters()
			m.view = viewCredits
			return m, m.loadCredits()
		}
	}
	m.clampScroll()
	return m, nil
}

func (m *Model) handleCreditsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.creditRow > 0 {
			m.creditRow--
		}
		return m, nil
	case "down", "j":
		if m.creditRow < len(m.credits)-1 {
			m.creditRow++
		}
		return m, nil

	case "n", "right":
		if !m.pager.CanNext() {
			return m, nil
		}
		m.pager.NextPage()
		return m, m.loadCredits()
	case "p", "left":
		if !m.pager.CanPrev() {
			return m, nil
		}
		m.pager.PrevPage()
		return m, m.loadCredits()

	case "t":
		m.pager.ToggleSort("name")
		return m, m.loadCredits()
	case "r":
		m.pager.ToggleSort("album.release_date")
		return m, m.loadCredits()

	case "y":
		// filter to the highlighted credit's release year, or
		// clear when it's already applied
		if credit, ok := m.selectedCredit(); ok {
			year := releaseYear(credit.Track.Album.ReleaseDate)
			if m.pager.Params().Filters.Year == year {
				year = 0
			}
			m.pager.SetYear(year)
			return m, m.loadCredits()
		}
	case "a":
		if credit, ok := m.selectedCredit(); ok {
			m.pager.SetArtist(credit.Track.Album.ArtistID)
			return m, m.loadCredits()
		}
	case "b":
		if credit, ok := m.selectedCredit(); ok {
			m.pager.SetAlbum(credit.Track.AlbumID)
			return m, m.loadCredits()
		}
	case "c":
		m.pager.ClearFilters()
		return m, m.loadCredits()

	case "enter":
		if credit, ok := m.selectedCredit(); ok {
			m.view = viewConnections
			m.connections = nil
			return m, m.loadConnections(credit.Track.Album.Artist)
		}

	case "d":
		if credit, ok := m.selectedCredit(); ok {
			return m, m.enqueueDiscovery(credit.Track.Album.Artist)
		}
	}
	return m, nil
}

func (m *Model) handleConnectionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.connectionRow > 0 {
			m.connectionRow--
		}
	case "down", "j":
		if m.connectionRow < len(m.connections)-1 {
			m.connectionRow++
		}
	case "d":
		if m.artist != nil {
			return m, m.enqueueDiscovery(*m.artist)
		}
	}
	return m, nil
}

func (m *Model) selectedCredit() (data.Credit, bool) {
	if m.creditRow < 0 || m.creditRow >= len(m.credits) {
		return data.Credit{}, false
	}
	return m.credits[m.creditRow], true
}

// releaseYear parses the leading year of an ISO date string.
func releaseYear(date string) int {
	var year int
	fmt.Sscanf(date, "%4d", &year)
	return year
}

// clampScroll keeps the cursor inside the rendered window. This is
// the scroll handler: it runs on every movement key and costs a few
// comparisons.
func (m *Model) clampScroll() {
	height := m.listHeight()
	if m.cursor < m.scrollTop {
		m.scrollTop = m.cursor
	}
	if m.cursor >= m.scrollTop+height {
		m.scrollTop = m.cursor - height + 1
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

// viewport returns the window geometry of the producer list: terminal
// rows are the height unit, so RowHeight is 1.
func (m *Model) viewport() window.Viewport {
	return window.Viewport{
		ScrollTop: m.scrollTop,
		Height:    m.listHeight(),
		RowHeight: 1,
	}
}
