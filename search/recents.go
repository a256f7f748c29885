package search

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MaxRecents caps the persisted recent-search list.
const MaxRecents = 5

// Recents persists the last few distinct queries as a JSON array in a
// single file. A missing or unreadable file reads as an empty list,
// never an error: the cache degrades, the search box keeps working.
type Recents struct {
	mu       sync.Mutex
	filename string
}

func NewRecents(filename string) *Recents {
	return &Recents{filename: filename}
}

// DefaultRecentsPath is the fixed location under the user's config
// dir.
func DefaultRecentsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error finding config dir: %w", err)
	}
	return filepath.Join(dir, "credits", "recent-searches.json"), nil
}

// List returns the persisted queries, most recent first.
func (r *Recents) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Save prepends the query, removing any equal entry (case matters)
// and truncating to MaxRecents. Blank queries are ignored. The
// read-modify-write holds the lock throughout, so concurrent savers
// can't interleave.
func (r *Recents) Save(query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	queries := r.load()
	next := make([]string, 0, len(queries)+1)
	next = append(next, query)
	for _, q := range queries {
		if q == query {
			continue
		}
		next = append(next, q)
	}
	if len(next) > MaxRecents {
		next = next[:MaxRecents]
	}

	bs, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("error serializing recent searches: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.filename), 0755); err != nil {
		return fmt.Errorf("error creating recent-searches dir: %w", err)
	}
	if err := os.WriteFile(r.filename, bs, 0666); err != nil {
		return fmt.Errorf("error writing recent searches: %w", err)
	}
	return nil
}

// load reads the file under the caller's lock. Corruption is treated
// as absence.
func (r *Recents) load() []string {
	bs, err := os.ReadFile(r.filename)
	if err != nil {
		return nil
	}
	var queries []string
	if err := json.Unmarshal(bs, &queries); err != nil {
		return nil
	}
	return queries
}
