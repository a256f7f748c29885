package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/search"
	"github.com/linernotes/credits/setflag"
	"github.com/linernotes/credits/subcmd"
)

func searchCmd(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("search", "search the catalog by name")
	subcmd.SetArg("query", "string", "substring matched against names (required)")
	var (
		limit = subcmd.Int("limit", 10, "number of results per kind")
		kinds = setflag.New(db.KindNames()...)
	)
	subcmd.Var(kinds, "kinds", "comma-separated kinds to search (default: all)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	query := strings.Join(subcmd.Args(), " ")

	selected := []db.Kind{}
	for _, name := range kinds.List() {
		selected = append(selected, db.Kind(name))
	}
	if len(selected) == 0 {
		selected = db.Kinds()
	}

	results := d.SearchAcross(ctx, query, selected, *limit)
	if results.Empty() {
		fmt.Printf("no results for '%s'\n", query)
		return nil
	}

	if path, err := search.DefaultRecentsPath(); err == nil {
		if err := search.NewRecents(path).Save(query); err != nil {
			log.Printf("recents: %s", err)
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "kind\tname\tid\tdetail\n")
	for _, producer := range results.Producers {
		fmt.Fprintf(tw, "producer\t%s\t%s\t%s\n", producer.Name, producer.ID, producer.Handle)
	}
	for _, artist := range results.Artists {
		fmt.Fprintf(tw, "artist\t%s\t%s\t%d followers\n", artist.Name, artist.ID, artist.Followers)
	}
	for _, album := range results.Albums {
		fmt.Fprintf(tw, "album\t%s\t%s\t%s\n", album.Name, album.ID, album.ReleaseDate)
	}
	for _, track := range results.Tracks {
		fmt.Fprintf(tw, "track\t%s\t%s\talbum %s\n", track.Name, track.ID, track.AlbumID)
	}
	tw.Flush()

	return nil
}
