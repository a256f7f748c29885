package main

import (
	"context"
	"fmt"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/subcmd"
)

func statsCmd(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("stats", "print catalog sizes")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	stats := d.Stats(ctx)
	fmt.Printf("producers\t%d\n", stats.Producers)
	fmt.Printf("artists\t\t%d\n", stats.Artists)
	fmt.Printf("tracks\t\t%d\n", stats.Tracks)

	if pending, err := d.CountPendingJobs(); err == nil && pending > 0 {
		fmt.Printf("pending jobs\t%d\n", pending)
	}

	return nil
}
