package data

// Tracks belong to exactly one album.
type Track struct {
	ID      string
	Name    string
	AlbumID string

	Album Album `gorm:"-"`
}
