package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linernotes/credits/data"
	"github.com/linernotes/credits/search"
	"github.com/linernotes/credits/window"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	toastStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// chromeRows is title + column header + status + footer.
const chromeRows = 4

func (m *Model) listHeight() int {
	height := m.height - chromeRows
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.titleLine() + "\n")

	switch m.view {
	case viewProducers:
		b.WriteString(m.producersView())
	case viewCredits:
		b.WriteString(m.creditsView())
	case viewConnections:
		b.WriteString(m.connectionsView())
	case viewSearch:
		b.WriteString(m.searchView())
	}

	b.WriteString("\n" + m.statusLine())
	b.WriteString("\n" + m.footerLine())
	return b.String()
}

func (m *Model) titleLine() string {
	switch m.view {
	case viewCredits:
		if m.producer != nil {
			return titleStyle.Render("credits — " + m.producer.Name)
		}
	case viewConnections:
		if m.artist != nil {
			return titleStyle.Render("producers on " + m.artist.Name)
		}
	case viewSearch:
		return titleStyle.Render("search")
	}
	return titleStyle.Render("producers")
}

func (m *Model) producersView() string {
	if m.loading {
		return m.skeletonView()
	}
	if len(m.producers) == 0 {
		return dimStyle.Render("no producers yet; seed the database to load a catalog")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("name") + "\n")

	visible := window.Visible(m.viewport(), len(m.producers))
	for i := visible.Start; i < visible.End; i++ {
		producer := m.producers[i]
		line := producer.Name
		if producer.Handle != "" {
			line += dimStyle.Render("  @" + producer.Handle)
		}
		if i == m.cursor {
			line = selectedStyle.Render(producer.Name)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) skeletonView() string {
	skeleton := window.Skeleton(skeletonRows)
	lines := make([]string, skeleton.Len())
	for i := range lines {
		lines[i] = dimStyle.Render("░░░░░░░░░░░░░░░░")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) creditsView() string {
	if m.loading {
		return m.skeletonView()
	}
	if m.err != nil {
		return errStyle.Render("fetch failed: " + m.err.Error())
	}
	if len(m.credits) == 0 {
		return dimStyle.Render("no credits match — `c` clears filters")
	}

	params := m.pager.Params()
	sortMark := func(column string) string {
		if params.Order.Column != column {
			return ""
		}
		if params.Order.Ascending {
			return " ↑"
		}
		return " ↓"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-28s %-24s %-20s %s",
		"track"+sortMark("name"), "album", "artist",
		"released"+sortMark("album.release_date"))) + "\n")

	for i, credit := range m.credits {
		line := fmt.Sprintf("%-28s %-24s %-20s %s",
			clip(credit.Track.Name, 28),
			clip(credit.Track.Album.Name, 24),
			clip(credit.Track.Album.Artist.Name, 20),
			credit.Track.Album.ReleaseDate)
		if i == m.creditRow {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) connectionsView() string {
	if m.loading {
		return m.skeletonView()
	}
	if m.err != nil {
		return errStyle.Render("fetch failed: " + m.err.Error())
	}
	if len(m.connections) == 0 {
		return dimStyle.Render("no producers credited on this page of albums")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-32s %s", "producer", "tracks")) + "\n")
	for i, producer := range m.connections {
		line := fmt.Sprintf("%-32s %d", clip(producer.Name, 32), producer.TrackCount)
		if i == m.connectionRow {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) searchView() string {
	var b strings.Builder
	b.WriteString(m.input.View() + "\n")

	query := m.input.Value()
	if query == "" {
		recents := m.recents.List()
		if len(recents) == 0 {
			b.WriteString(dimStyle.Render("type to search"))
			return b.String()
		}
		b.WriteString(dimStyle.Render("recent:") + "\n")
		for _, q := range recents {
			b.WriteString("  " + q + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	if search.QueryLen(query) < search.MinQueryLen {
		b.WriteString(dimStyle.Render("keep typing…"))
		return b.String()
	}
	if m.results.Empty() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("no results for '%s'", m.lastQuery)))
		return b.String()
	}

	section := func(label string, names []string) {
		if len(names) == 0 {
			return
		}
		b.WriteString(headerStyle.Render(label) + "\n")
		for _, name := range names {
			b.WriteString("  " + name + "\n")
		}
	}
	section("producers", producerNames(m.results.Producers))
	section("artists", artistNames(m.results.Artists))
	section("albums", albumNames(m.results.Albums))
	section("tracks", trackNames(m.results.Tracks))
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) statusLine() string {
	if m.err != nil && m.view == viewProducers {
		return errStyle.Render("fetch failed: " + m.err.Error())
	}
	if m.toast != "" {
		return toastStyle.Render(m.toast)
	}

	if m.view == viewCredits {
		params := m.pager.Params()
		parts := []string{fmt.Sprintf("page %d", params.Page)}
		if params.Filters.Year != 0 {
			parts = append(parts, fmt.Sprintf("year=%d", params.Filters.Year))
		}
		if params.Filters.ArtistID != "" {
			parts = append(parts, "artist="+params.Filters.ArtistID)
		}
		if params.Filters.AlbumID != "" {
			parts = append(parts, "album="+params.Filters.AlbumID)
		}
		if !m.pager.CanNext() {
			parts = append(parts, "end")
		}
		return dimStyle.Render(strings.Join(parts, "  "))
	}
	return ""
}

func (m *Model) footerLine() string {
	stats := fmt.Sprintf("%d producers · %d artists · %d tracks",
		m.stats.Producers, m.stats.Artists, m.stats.Tracks)
	keys := "/: search  enter: open  esc: back  q: quit"
	if m.view == viewCredits {
		keys = "n/p: page  t/r: sort  y/a/b: filter  c: clear  d: discover"
	}
	return dimStyle.Render(stats + "   " + keys)
}

func producerNames(producers []data.Producer) []string {
	out := make([]string, len(producers))
	for i, p := range producers {
		out[i] = p.Name
	}
	return out
}

func artistNames(artists []data.Artist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.Name
	}
	return out
}

func albumNames(albums []data.Album) []string {
	out := make([]string, len(albums))
	for i, a := range albums {
		out[i] = a.Name
	}
	return out
}

func trackNames(tracks []data.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Name
	}
	return out
}

// clip truncates on rune boundaries so a multi-byte name never
// renders as mangled bytes.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
