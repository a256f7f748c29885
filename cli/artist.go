package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/subcmd"
)

func artistCmd(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("artist", "show an artist and the producers credited on their albums")
	subcmd.SetArg("id", "string", "artist id (required)")
	var (
		page = subcmd.Int("page", 1, "album-level page to aggregate")
		size = subcmd.Int("size", db.DefaultPageSize, "albums per page")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one artist id")
	}
	id := subcmd.Arg(0)

	artist, err := d.GetArtist(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(artist.Name)
	fmt.Printf("  %d followers, popularity %d\n\n", artist.Followers, artist.Popularity)

	producers, err := d.ArtistProducers(ctx, id, db.ListOptions{Page: *page, PageSize: *size})
	if err != nil {
		return err
	}
	if len(producers) == 0 {
		fmt.Println("no credited producers on this page of albums")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "producer\ttracks\tid\n")
	for _, producer := range producers {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", producer.Name, producer.TrackCount, producer.ID)
	}
	tw.Flush()

	return nil
}
