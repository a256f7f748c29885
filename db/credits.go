package db

import (
	"context"
	"fmt"

	"github.com/linernotes/credits/data"
)

// CreditFilters narrow a producer's credit list. Zero values mean "no
// filter on that dimension"; set filters are ANDed together.
type CreditFilters struct {
	// Year keeps credits whose album released within the half-open
	// range [year-01-01, (year+1)-01-01).
	Year int

	// ArtistID keeps credits whose album belongs to this artist.
	ArtistID string

	// AlbumID keeps credits whose track belongs to this album.
	AlbumID string
}

// CreditOptions control a read of a producer's credit list.
type CreditOptions struct {
	Page     int
	PageSize int

	// OrderBy is a dot path into the joined chain, like "name",
	// "album.release_date", or "album.artist.name". Empty or
	// unknown paths fall back to album release date descending.
	OrderBy   string
	Ascending bool

	Filters CreditFilters
}

// creditOrderColumns routes dot paths to the joined table that owns
// the column. Ordering must hit the joined table, not the root: the
// credits table itself has nothing worth sorting by.
var creditOrderColumns = map[string]string{
	"name":               "tracks.name",
	"track.name":         "tracks.name",
	"album.name":         "albums.name",
	"album.release_date": "albums.release_date",
	"album.artist.name":  "artists.name",
	"artist.name":        "artists.name",
}

func creditOrder(path string, ascending bool) string {
	column, known := creditOrderColumns[path]
	if !known {
		column, ascending = "albums.release_date", false
	}
	if ascending {
		return column + " asc"
	}
	return column + " desc"
}

// creditRow is the flattened shape of one join row; see
// ProducerCredits.
type creditRow struct {
	CreditID    string
	TrackID     string
	TrackName   string
	AlbumID     string
	AlbumName   string
	ReleaseDate string
	ArtistID    string
	ArtistName  string
}

func (row creditRow) credit(producerID string) data.Credit {
	return data.Credit{
		ID:         row.CreditID,
		TrackID:    row.TrackID,
		ProducerID: producerID,
		Track: data.Track{
			ID:      row.TrackID,
			Name:    row.TrackName,
			AlbumID: row.AlbumID,
			Album: data.Album{
				ID:          row.AlbumID,
				Name:        row.AlbumName,
				ReleaseDate: row.ReleaseDate,
				ArtistID:    row.ArtistID,
				Artist: data.Artist{
					ID:   row.ArtistID,
					Name: row.ArtistName,
				},
			},
		},
	}
}

// ProducerCredits reads one page of a producer's credits with the
// full Track→Album→Artist chain attached. The inner joins drop
// credits with dangling references.
func (db *DB) ProducerCredits(ctx context.Context, producerID string, opts CreditOptions) ([]data.Credit, error) {
	offset, limit := ListOptions{Page: opts.Page, PageSize: opts.PageSize}.window()

	q := db.
		Table("credits").
		Select(`credits.id as credit_id,
			tracks.id as track_id, tracks.name as track_name,
			albums.id as album_id, albums.name as album_name,
			albums.release_date as release_date,
			artists.id as artist_id, artists.name as artist_name`).
		Joins("join tracks on tracks.id = credits.track_id").
		Joins("join albums on albums.id = tracks.album_id").
		Joins("join artists on artists.id = albums.artist_id").
		Where("credits.producer_id = ?", producerID)

	if year := opts.Filters.Year; year != 0 {
		q = q.Where("albums.release_date >= ? and albums.release_date < ?",
			fmt.Sprintf("%04d-01-01", year),
			fmt.Sprintf("%04d-01-01", year+1))
	}
	if artistID := opts.Filters.ArtistID; artistID != "" {
		q = q.Where("albums.artist_id = ?", artistID)
	}
	if albumID := opts.Filters.AlbumID; albumID != "" {
		q = q.Where("tracks.album_id = ?", albumID)
	}

	var rows []creditRow
	if err := q.
		Order(creditOrder(opts.OrderBy, opts.Ascending)).
		Offset(offset).
		Limit(limit).
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error listing credits for producer '%s': %w", producerID, err)
	}

	credits := make([]data.Credit, len(rows))
	for i, row := range rows {
		credits[i] = row.credit(producerID)
	}
	return credits, nil
}

// ArtistProducers reads one album-level page of an artist's catalog,
// joins down to the credited producers, and folds the rows into one
// entry per distinct producer with its TrackCount. Credits whose
// producer no longer resolves are dropped by the fold.
func (db *DB) ArtistProducers(ctx context.Context, artistID string, opts ListOptions) ([]data.Producer, error) {
	offset, limit := opts.window()

	var albumIDs []string
	if err := db.
		Table("albums").
		Where("artist_id = ?", artistID).
		Order("release_date desc").
		Offset(offset).
		Limit(limit).
		Pluck("id", &albumIDs).
		Error; err != nil {
		return nil, fmt.Errorf("error listing albums for artist '%s': %w", artistID, err)
	}
	if len(albumIDs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled: %w", err)
	}

	var rows []struct {
		ProducerID string
		Name       string
		Handle     string
		Email      string
		Metadata   data.Metadata
	}
	if err := db.
		Table("credits").
		Select(`producers.id as producer_id, producers.name,
			producers.handle, producers.email, producers.metadata`).
		Joins("join tracks on tracks.id = credits.track_id").
		Joins("left join producers on producers.id = credits.producer_id").
		Where("tracks.album_id in ?", albumIDs).
		Order("credits.id").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error listing producers for artist '%s': %w", artistID, err)
	}

	perCredit := make([]*data.Producer, len(rows))
	for i, row := range rows {
		if row.ProducerID == "" {
			continue
		}
		perCredit[i] = &data.Producer{
			ID:       row.ProducerID,
			Name:     row.Name,
			Handle:   row.Handle,
			Email:    row.Email,
			Metadata: row.Metadata,
		}
	}
	return data.FoldProducers(perCredit), nil
}

// ProducerArtists is the other direction of the connection view: the
// artists whose albums carry this producer's credits, counted the
// same way.
func (db *DB) ProducerArtists(ctx context.Context, producerID string, opts ListOptions) ([]data.Artist, error) {
	offset, limit := opts.window()

	var rows []struct {
		ArtistID   string
		Name       string
		Followers  int64
		Popularity int64
		Metadata   data.Metadata
	}
	if err := db.
		Table("credits").
		Select(`artists.id as artist_id, artists.name,
			artists.followers, artists.popularity, artists.metadata`).
		Joins("join tracks on tracks.id = credits.track_id").
		Joins("join albums on albums.id = tracks.album_id").
		Joins("left join artists on artists.id = albums.artist_id").
		Where("credits.producer_id = ?", producerID).
		Order("credits.id").
		Offset(offset).
		Limit(limit).
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error listing artists for producer '%s': %w", producerID, err)
	}

	perCredit := make([]*data.Artist, len(rows))
	for i, row := range rows {
		if row.ArtistID == "" {
			continue
		}
		perCredit[i] = &data.Artist{
			ID:         row.ArtistID,
			Name:       row.Name,
			Followers:  row.Followers,
			Popularity: row.Popularity,
			Metadata:   row.Metadata,
		}
	}
	return data.FoldArtists(perCredit), nil
}
