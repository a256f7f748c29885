package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/subcmd"
)

func discover(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("discover", "enqueue an artist-discovery job for the external pipeline")
	subcmd.SetArg("name", "string", "artist name to discover (required)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	name := strings.Join(subcmd.Args(), " ")
	if name == "" {
		return fmt.Errorf("expected an artist name")
	}

	id, err := d.EnqueueJob("discover-artist", fmt.Sprintf(`{"name":%q}`, name))
	if err != nil {
		return err
	}
	fmt.Printf("queued %s\n", id)
	return nil
}

func optimize(ctx context.Context, d *db.DB, args []string) error {
	subcmd := subcmd.New("optimize", "invoke a named maintenance procedure")
	subcmd.SetArg("procedure", "string", "one of 'optimize', 'analyze', 'vacuum' (default: optimize)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	name := "optimize"
	if subcmd.NArg() > 0 {
		name = subcmd.Arg(0)
	}
	if err := d.InvokeProcedure(name); err != nil {
		return err
	}
	fmt.Printf("ran %s\n", name)
	return nil
}
