package data

// Artists own albums. We only ever read them; the discovery pipeline
// that writes them lives elsewhere.
type Artist struct {
	ID         string
	Name       string
	Followers  int64
	Popularity int64

	Metadata Metadata

	// Computed when the artist appears in a producer's connection
	// view. Never stored.
	TrackCount int64 `gorm:"-"`
}
