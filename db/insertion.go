package db

import (
	"fmt"

	"github.com/linernotes/credits/data"
	"gorm.io/gorm/clause"
)

// InsertProducer, given a Producer, inserts it into the producers
// table, doing nothing if it already exists.
func (db *DB) InsertProducer(producer *data.Producer) error {
	if producer.ID == "" {
		return fmt.Errorf("no producer id")
	}
	if err := db.
		Table("producers").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(producer).
		Error; err != nil {
		return fmt.Errorf("error inserting producer '%s': %w", producer.Name, err)
	}
	return nil
}

func (db *DB) InsertArtist(artist *data.Artist) error {
	if artist.ID == "" {
		return fmt.Errorf("no artist id")
	}
	if err := db.
		Table("artists").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(artist).
		Error; err != nil {
		return fmt.Errorf("error inserting artist '%s': %w", artist.Name, err)
	}
	return nil
}

func (db *DB) InsertAlbum(album *data.Album) error {
	if album.ID == "" {
		return fmt.Errorf("no album id")
	}
	if err := db.
		Table("albums").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(album).
		Error; err != nil {
		return fmt.Errorf("error inserting album '%s': %w", album.Name, err)
	}
	return nil
}

func (db *DB) InsertTrack(track *data.Track) error {
	if track.ID == "" {
		return fmt.Errorf("no track id")
	}
	if err := db.
		Table("tracks").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(track).
		Error; err != nil {
		return fmt.Errorf("error inserting track '%s': %w", track.Name, err)
	}
	return nil
}

func (db *DB) InsertCredit(credit *data.Credit) error {
	if credit.ID == "" {
		return fmt.Errorf("no credit id")
	}
	if err := db.
		Table("credits").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(credit).
		Error; err != nil {
		return fmt.Errorf("error inserting credit '%s': %w", credit.ID, err)
	}
	return nil
}
