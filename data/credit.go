package data

// Credits link one track to one producer. A track may carry several
// credits and a producer may hold many; this is the row that a
// producer's track list actually paginates. The joined
// Track→Album→Artist chain rides along read-only.
type Credit struct {
	ID         string
	TrackID    string
	ProducerID string

	Track Track `gorm:"-"`
}
