package main

import (
	"context"
	"fmt"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/server"
	"github.com/linernotes/credits/subcmd"
)

func serve(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("serve", "run the JSON API")
	var (
		port = subcmd.Int("port", 9999, "http port")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	return server.Run(ctx, db, addr)
}
