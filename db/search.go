package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/linernotes/credits/data"
	"golang.org/x/sync/errgroup"
)

// Kind names a searchable entity table.
type Kind string

const (
	KindProducer Kind = "producer"
	KindArtist   Kind = "artist"
	KindAlbum    Kind = "album"
	KindTrack    Kind = "track"
)

// Kinds lists every searchable kind, in display order.
func Kinds() []Kind {
	return []Kind{KindProducer, KindArtist, KindAlbum, KindTrack}
}

func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return names
}

// pattern turns a trimmed query into a substring LIKE pattern.
// sqlite's LIKE is case-insensitive, which is all the matching we
// promise.
func pattern(query string) string {
	return "%" + query + "%"
}

// SearchProducers matches producers whose name contains the query. A
// blank query returns nothing without touching the store.
func (db *DB) SearchProducers(ctx context.Context, query string, limit int) ([]data.Producer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var producers []data.Producer
	if err := db.
		Table("producers").
		Where("name like ?", pattern(query)).
		Order("name").
		Limit(limit).
		Find(&producers).
		Error; err != nil {
		return nil, fmt.Errorf("error searching producers for '%s': %w", query, err)
	}
	return producers, nil
}

func (db *DB) SearchArtists(ctx context.Context, query string, limit int) ([]data.Artist, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var artists []data.Artist
	if err := db.
		Table("artists").
		Where("name like ?", pattern(query)).
		Order("name").
		Limit(limit).
		Find(&artists).
		Error; err != nil {
		return nil, fmt.Errorf("error searching artists for '%s': %w", query, err)
	}
	return artists, nil
}

func (db *DB) SearchAlbums(ctx context.Context, query string, limit int) ([]data.Album, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var albums []data.Album
	if err := db.
		Table("albums").
		Where("name like ?", pattern(query)).
		Order("name").
		Limit(limit).
		Find(&albums).
		Error; err != nil {
		return nil, fmt.Errorf("error searching albums for '%s': %w", query, err)
	}
	return albums, nil
}

func (db *DB) SearchTracks(ctx context.Context, query string, limit int) ([]data.Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var tracks []data.Track
	if err := db.
		Table("tracks").
		Where("name like ?", pattern(query)).
		Order("name").
		Limit(limit).
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error searching tracks for '%s': %w", query, err)
	}
	return tracks, nil
}

// SearchResults holds one result list per searched kind. Kinds that
// weren't requested, and kinds whose sub-search failed, stay empty.
type SearchResults struct {
	Producers []data.Producer
	Artists   []data.Artist
	Albums    []data.Album
	Tracks    []data.Track
}

func (r SearchResults) Empty() bool {
	return len(r.Producers) == 0 && len(r.Artists) == 0 &&
		len(r.Albums) == 0 && len(r.Tracks) == 0
}

// SearchAcross fans out one substring search per requested kind,
// concurrently. A failing sub-search logs and degrades to an empty
// list; the call as a whole never fails.
func (db *DB) SearchAcross(ctx context.Context, query string, kinds []Kind, limit int) SearchResults {
	var results SearchResults

	g := new(errgroup.Group)
	for _, kind := range kinds {
		switch kind {
		case KindProducer:
			g.Go(func() error {
				if producers, err := db.SearchProducers(ctx, query, limit); err != nil {
					log.Printf("search producers: %s", err)
				} else {
					results.Producers = producers
				}
				return nil
			})
		case KindArtist:
			g.Go(func() error {
				if artists, err := db.SearchArtists(ctx, query, limit); err != nil {
					log.Printf("search artists: %s", err)
				} else {
					results.Artists = artists
				}
				return nil
			})
		case KindAlbum:
			g.Go(func() error {
				if albums, err := db.SearchAlbums(ctx, query, limit); err != nil {
					log.Printf("search albums: %s", err)
				} else {
					results.Albums = albums
				}
				return nil
			})
		case KindTrack:
			g.Go(func() error {
				if tracks, err := db.SearchTracks(ctx, query, limit); err != nil {
					log.Printf("search tracks: %s", err)
				} else {
					results.Tracks = tracks
				}
				return nil
			})
		}
	}
	g.Wait()

	return results
}
