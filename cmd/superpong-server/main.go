package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/brickrockler/superpong/config"
	"github.com/brickrockler/superpong/network"
	"github.com/brickrockler/superpong/protocol"
	"github.com/brickrockler/superpong/room"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	mgr := room.NewManager(cfg.MaxRooms, cfg.MaxPlayersPerRoom, log)
	sched := room.NewScheduler(mgr, protocol.SimTickHz)
	gw := network.NewGateway(mgr, cfg.MaxConnections, log)
	srv := network.NewServer(cfg.Addr, gw, mgr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(ctx)
	})
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
