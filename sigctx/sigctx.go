// Package sigctx provides a context canceled by the first interrupt
// signal. After the first interrupt, signal delivery reverts to the
// default behavior, so a second interrupt kills the process.
package sigctx

import (
	"context"
	"os"
	"os/signal"
)

func New() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		cancel()
		signal.Stop(c)
	}()

	return ctx
}
