package search_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/linernotes/credits/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fetchSpy records every fetch the controller fires.
type fetchSpy struct {
	mu      sync.Mutex
	queries []string
}

func (s *fetchSpy) fetch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
}

func (s *fetchSpy) fetched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func TestDebounceBurst(t *testing.T) {
	spy := &fetchSpy{}
	c := NewTestController(t, 200*time.Millisecond, spy)

	// five keystrokes inside the quiet period: one fetch, for the
	// final value
	for _, q := range []string{"d", "dr", "dra", "drak", "drake"} {
		c.SetQuery(q)
		time.Sleep(30 * time.Millisecond)
	}
	time.Sleep(400 * time.Millisecond)

	assert.Equal(t, []string{"drake"}, spy.fetched())
	assert.Equal(t, "drake", c.Settled())
	assert.Equal(t, "drake", c.Query())
}

func TestDebounceSeparateBursts(t *testing.T) {
	spy := &fetchSpy{}
	c := NewTestController(t, 50*time.Millisecond, spy)

	c.SetQuery("drake")
	time.Sleep(150 * time.Millisecond)
	c.SetQuery("rihanna")
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"drake", "rihanna"}, spy.fetched())
}

func TestShortQueriesDontFetch(t *testing.T) {
	spy := &fetchSpy{}
	c := NewTestController(t, 50*time.Millisecond, spy)

	c.SetQuery("d")
	time.Sleep(150 * time.Millisecond)

	// the query settled, but nothing fired
	assert.Equal(t, "d", c.Settled())
	assert.Empty(t, spy.fetched())
}

func TestQueryLengthCountsRunes(t *testing.T) {
	spy := &fetchSpy{}
	c := NewTestController(t, 50*time.Millisecond, spy)

	// one accented character is one character, however many bytes
	c.SetQuery("é")
	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, spy.fetched())

	c.SetQuery("éé")
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{"éé"}, spy.fetched())

	assert.Equal(t, 2, search.QueryLen("éé"))
}

func TestStopCancelsPendingFire(t *testing.T) {
	spy := &fetchSpy{}
	c := NewTestController(t, 50*time.Millisecond, spy)

	c.SetQuery("drake")
	c.Stop()
	time.Sleep(150 * time.Millisecond)

	assert.Empty(t, spy.fetched())
}

func NewTestController(t *testing.T, delay time.Duration, spy *fetchSpy) *search.Controller {
	t.Helper()
	c := search.NewController(delay, spy.fetch)
	t.Cleanup(c.Stop)
	return c
}

func TestRecentsDedup(t *testing.T) {
	r := search.NewRecents(filepath.Join(t.TempDir(), "recent.json"))

	require.NoError(t, r.Save("drake"))
	require.NoError(t, r.Save("Drake"))
	require.NoError(t, r.Save("drake"))

	// case-sensitive dedup, most recent first
	assert.Equal(t, []string{"drake", "Drake"}, r.List())
}

func TestRecentsEviction(t *testing.T) {
	r := search.NewRecents(filepath.Join(t.TempDir(), "recent.json"))

	for _, q := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, r.Save(q))
	}

	// the sixth save evicts the oldest
	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, r.List())
}

func TestRecentsIgnoresBlank(t *testing.T) {
	r := search.NewRecents(filepath.Join(t.TempDir(), "recent.json"))

	require.NoError(t, r.Save("   "))
	require.NoError(t, r.Save(""))
	assert.Empty(t, r.List())
}

func TestRecentsSurvivesCorruption(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "recent.json")
	require.NoError(t, os.WriteFile(filename, []byte("{not json"), 0666))

	r := search.NewRecents(filename)
	assert.Empty(t, r.List())

	// saving over the corrupt file starts fresh
	require.NoError(t, r.Save("drake"))
	assert.Equal(t, []string{"drake"}, r.List())
}

func TestRecentsMissingFile(t *testing.T) {
	r := search.NewRecents(filepath.Join(t.TempDir(), "never-written.json"))
	assert.Empty(t, r.List())
}
