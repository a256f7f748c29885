// credits is a terminal front end over a sqlite3 catalog of
// producers, artists, albums, and tracks, linked by per-track
// production credits.
//
// see db/schema.sql for info about the database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: credits $cmd
valid $cmd are 'browse', 'search', 'producer', 'artist', 'stats', 'serve', 'queue', 'discover', 'optimize'
for help: credits $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	filename := os.Getenv("CREDITS_DB")
	if filename == "" {
		filename = "credits.db"
	}
	db, err := db.Open(filename)
	if err != nil {
		return err
	}
	defer db.Close()

	if len(os.Args) < 2 {
		return fmt.Errorf(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "browse":
		return browse(ctx, db, args)

	case "search":
		return searchCmd(ctx, db, args)

	case "producer":
		return producerCmd(ctx, db, args)

	case "artist":
		return artistCmd(ctx, db, args)

	case "stats":
		return statsCmd(ctx, db, args)

	case "serve":
		return serve(ctx, db, args)

	case "queue":
		return queueCmd(ctx, db, args)

	case "discover":
		return discover(ctx, db, args)

	case "optimize":
		return optimize(ctx, db, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
