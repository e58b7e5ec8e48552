// Command tsconv converts and computes unix timestamps.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/blockberries/unixts/example/tsconv/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("tsconv failed")
		stop()
		os.Exit(1)
	}
}
