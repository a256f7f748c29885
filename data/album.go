package data

// Albums belong to exactly one artist. ReleaseDate is an ISO date
// string ("2020-06-19"), which sorts and range-compares correctly as
// text.
type Album struct {
	ID          string
	Name        string
	ReleaseDate string
	ArtistID    string

	Artist Artist `gorm:"-"`
}
