package main

import (
	"context"
	"fmt"
	"time"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/queue"
	"github.com/linernotes/credits/subcmd"
)

func queueCmd(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("queue", "watch the discovery job queue")
	var (
		interval = subcmd.Duration("interval", 30*time.Second, "reporting interval")
		drain    = subcmd.Bool("drain", false, "mark pending jobs done instead of leaving them for the pipeline")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	return queue.Run(ctx, db, *interval, *drain)
}
