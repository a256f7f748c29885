package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/subcmd"
)

func producerCmd(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("producer", "show a producer and one page of their credits")
	subcmd.SetArg("id", "string", "producer id (required)")
	var (
		page   = subcmd.Int("page", 1, "credit page")
		size   = subcmd.Int("size", db.DefaultPageSize, "credits per page")
		year   = subcmd.Int("year", 0, "only credits on albums released this year")
		artist = subcmd.String("artist", "", "only credits on this artist's albums")
		album  = subcmd.String("album", "", "only credits on this album")
		order  = subcmd.String("order", "", "sort path, eg 'name' or 'album.release_date'")
		asc    = subcmd.Bool("asc", false, "sort ascending")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one producer id")
	}
	id := subcmd.Arg(0)

	producer, err := d.GetProducer(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(producer.Name)
	if producer.Handle != "" {
		fmt.Printf("  @%s\n", producer.Handle)
	}
	if producer.Email != "" {
		fmt.Printf("  %s\n", producer.Email)
	}
	if genres := producer.Metadata.Genres; len(genres) > 0 {
		fmt.Printf("  %s\n", strings.Join(genres, ", "))
	}
	fmt.Println()

	credits, err := d.ProducerCredits(ctx, id, db.CreditOptions{
		Page:      *page,
		PageSize:  *size,
		OrderBy:   *order,
		Ascending: *asc,
		Filters: db.CreditFilters{
			Year:     *year,
			ArtistID: *artist,
			AlbumID:  *album,
		},
	})
	if err != nil {
		return err
	}
	if len(credits) == 0 {
		fmt.Printf("no credits on page %d\n", *page)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "track\talbum\tartist\treleased\n")
	for _, credit := range credits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			credit.Track.Name,
			credit.Track.Album.Name,
			credit.Track.Album.Artist.Name,
			credit.Track.Album.ReleaseDate)
	}
	tw.Flush()

	if len(credits) < *size {
		fmt.Printf("\nend of credits\n")
	} else {
		fmt.Printf("\nmore: credits producer -page %d %s\n", *page+1, id)
	}

	return nil
}
