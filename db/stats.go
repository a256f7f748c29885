package db

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Stats reports coarse table sizes for the browse footer.
type Stats struct {
	Producers int64
	Artists   int64
	Tracks    int64
}

// Stats runs the three row counts concurrently. A failing count logs
// and degrades to zero; the call never fails.
func (db *DB) Stats(ctx context.Context) Stats {
	var stats Stats

	count := func(table string, dst *int64) func() error {
		return func() error {
			var n int64
			if err := db.Table(table).Count(&n).Error; err != nil {
				log.Printf("error counting %s: %s", table, err)
				return nil
			}
			*dst = n
			return nil
		}
	}

	g := new(errgroup.Group)
	g.Go(count("producers", &stats.Producers))
	g.Go(count("artists", &stats.Artists))
	g.Go(count("tracks", &stats.Tracks))
	g.Wait()

	return stats
}
