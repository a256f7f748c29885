// Package queue watches the discovery job queue. The jobs themselves
// run in the external pipeline; the monitor reports backlog, and the
// optional drainer marks jobs done so a dev environment with no
// pipeline attached doesn't accumulate them forever.
package queue

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/linernotes/credits/db"
	"golang.org/x/sync/errgroup"
)

const batchSize = 20

func Run(ctx context.Context, db *db.DB, interval time.Duration, drain bool) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return runMonitor(ctx, db, interval) })
	if drain {
		g.Go(func() error { return runDrainer(ctx, db, interval) })
	}

	return g.Wait()
}

func runMonitor(ctx context.Context, db *db.DB, interval time.Duration) error {
	for {
		pending, err := db.CountPendingJobs()
		if err != nil {
			return fmt.Errorf("monitor error: %w", err)
		}
		log.Printf("queue:\t%d pending", pending)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func runDrainer(ctx context.Context, db *db.DB, interval time.Duration) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		jobs, err := db.GetPendingJobs(batchSize)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			log.Printf("drain:\t%s\t%s", job.Name, job.ID)
			if err := db.MarkJobDone(job.ID); err != nil {
				return err
			}
		}

		if len(jobs) < batchSize {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}
}
