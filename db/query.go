package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/linernotes/credits/data"
	"gorm.io/gorm"
)

func (db *DB) GetProducer(ctx context.Context, id string) (*data.Producer, error) {
	var producer data.Producer
	if err := db.
		Table("producers").
		Where("id = ?", id).
		First(&producer).
		Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("producer '%s': %w", id, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error getting producer '%s': %w", id, err)
	}
	return &producer, nil
}

func (db *DB) GetArtist(ctx context.Context, id string) (*data.Artist, error) {
	var artist data.Artist
	if err := db.
		Table("artists").
		Where("id = ?", id).
		First(&artist).
		Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("artist '%s': %w", id, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error getting artist '%s': %w", id, err)
	}
	return &artist, nil
}

func (db *DB) GetAlbum(ctx context.Context, id string) (*data.Album, error) {
	var album data.Album
	if err := db.
		Table("albums").
		Where("id = ?", id).
		First(&album).
		Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("album '%s': %w", id, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error getting album '%s': %w", id, err)
	}
	return &album, nil
}

func (db *DB) GetTrack(ctx context.Context, id string) (*data.Track, error) {
	var track data.Track
	if err := db.
		Table("tracks").
		Where("id = ?", id).
		First(&track).
		Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("track '%s': %w", id, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error getting track '%s': %w", id, err)
	}
	return &track, nil
}

// ListProducers reads one page of producers. An empty page is not an
// error; callers use a short page as their end-of-data signal.
func (db *DB) ListProducers(ctx context.Context, opts ListOptions) ([]data.Producer, error) {
	offset, limit := opts.window()
	q := db.Table("producers")
	if order := opts.order(); order != "" {
		q = q.Order(order)
	}
	var producers []data.Producer
	if err := q.
		Offset(offset).
		Limit(limit).
		Find(&producers).
		Error; err != nil {
		return nil, fmt.Errorf("error listing producers: %w", err)
	}
	return producers, nil
}

func (db *DB) ListArtists(ctx context.Context, opts ListOptions) ([]data.Artist, error) {
	offset, limit := opts.window()
	q := db.Table("artists")
	if order := opts.order(); order != "" {
		q = q.Order(order)
	}
	var artists []data.Artist
	if err := q.
		Offset(offset).
		Limit(limit).
		Find(&artists).
		Error; err != nil {
		return nil, fmt.Errorf("error listing artists: %w", err)
	}
	return artists, nil
}

// ListAlbums reads one page of albums, optionally restricted to one
// artist. An empty artistID means no filter.
func (db *DB) ListAlbums(ctx context.Context, opts ListOptions, artistID string) ([]data.Album, error) {
	offset, limit := opts.window()
	q := db.Table("albums")
	if artistID != "" {
		q = q.Where("artist_id = ?", artistID)
	}
	if order := opts.order(); order != "" {
		q = q.Order(order)
	}
	var albums []data.Album
	if err := q.
		Offset(offset).
		Limit(limit).
		Find(&albums).
		Error; err != nil {
		return nil, fmt.Errorf("error listing albums: %w", err)
	}
	return albums, nil
}

// ListTracks reads one page of tracks, optionally restricted to one
// album.
func (db *DB) ListTracks(ctx context.Context, opts ListOptions, albumID string) ([]data.Track, error) {
	offset, limit := opts.window()
	q := db.Table("tracks")
	if albumID != "" {
		q = q.Where("album_id = ?", albumID)
	}
	if order := opts.order(); order != "" {
		q = q.Order(order)
	}
	var tracks []data.Track
	if err := q.
		Offset(offset).
		Limit(limit).
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error listing tracks: %w", err)
	}
	return tracks, nil
}
