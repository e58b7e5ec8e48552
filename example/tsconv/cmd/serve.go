package cmd

import (
	"context"
	"net"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/blockberries/unixts/wire"
)

func newServeCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the timestamp gRPC service until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lis, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return errors.Wrap(err, "listen")
			}
			return serve(cmd.Context(), lis)
		},
	}
}

// serve runs the timestamp service on lis until ctx is done or the
// server fails. It returns only after the shutdown watcher has exited.
func serve(ctx context.Context, lis net.Listener) error {
	gs := grpc.NewServer()
	wire.NewServer().Register(gs)

	var wg sync.WaitGroup
	done := make(chan struct{})
	defer wg.Wait()
	defer close(done)

	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			gs.GracefulStop()
		case <-done:
		}
	}()

	log.Info().Str("addr", lis.Addr().String()).Msg("serving timestamp service")
	if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "serve")
	}
	return nil
}
