// this program populates a sqlite3 catalog file from a JSON dump of
// producers, artists, albums, tracks, and credits, as exported by the
// discovery pipeline.
//
// see db/schema.sql for info about the resulting database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/linernotes/credits/data"
	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	} else if err != nil {
		fmt.Println("canceled")
	} else {
		fmt.Println("done")
	}
}

type seedFile struct {
	Producers []data.Producer `json:"producers"`
	Artists   []data.Artist   `json:"artists"`
	Albums    []data.Album    `json:"albums"`
	Tracks    []data.Track    `json:"tracks"`
	Credits   []data.Credit   `json:"credits"`
}

func run() error {
	filename := flag.String("db", "credits.db", "database file to populate")
	flag.Parse()
	if flag.NArg() != 1 {
		return fmt.Errorf("usage: seed [-db credits.db] <dump.json>")
	}

	ctx := sigctx.New()

	db, err := db.Open(*filename)
	if err != nil {
		return err
	}
	defer db.Close()

	bs, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("error reading dump '%s': %w", flag.Arg(0), err)
	}
	var seed seedFile
	if err := json.Unmarshal(bs, &seed); err != nil {
		return fmt.Errorf("error parsing dump '%s': %w", flag.Arg(0), err)
	}

	return populate(ctx, db, seed)
}

func populate(ctx context.Context, db *db.DB, seed seedFile) error {
	for i := range seed.Artists {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := db.InsertArtist(&seed.Artists[i]); err != nil {
			return err
		}
	}
	log.Printf("artists:\t%d", len(seed.Artists))

	for i := range seed.Albums {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := db.InsertAlbum(&seed.Albums[i]); err != nil {
			return err
		}
	}
	log.Printf("albums:\t%d", len(seed.Albums))

	for i := range seed.Tracks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := db.InsertTrack(&seed.Tracks[i]); err != nil {
			return err
		}
	}
	log.Printf("tracks:\t%d", len(seed.Tracks))

	for i := range seed.Producers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := db.InsertProducer(&seed.Producers[i]); err != nil {
			return err
		}
	}
	log.Printf("producers:\t%d", len(seed.Producers))

	for i := range seed.Credits {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := db.InsertCredit(&seed.Credits[i]); err != nil {
			return err
		}
	}
	log.Printf("credits:\t%d", len(seed.Credits))

	return nil
}
