package data

// Producers are the anchor of the catalog: anyone who holds at least
// one credit on a track.
//
// Producers have many tracks via the credits table.
type Producer struct {
	ID     string
	Name   string
	Handle string
	Email  string

	Metadata Metadata

	// The number of credits contributing to this producer within
	// the window that produced it. Computed per fetch, never
	// stored.
	TrackCount int64 `gorm:"-"`
}
