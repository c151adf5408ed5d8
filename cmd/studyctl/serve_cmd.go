package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	serverStopTimeout = 10 * time.Second
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local inspection API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, opts, func(ctx context.Context, app *application) error {
				if addr == "" {
					addr = app.config.Server.Addr
				}
				ln, err := net.Listen("tcp", addr)
				if err != nil {
					return fmt.Errorf("listen on %s: %w", addr, err)
				}

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runServer(ctx, app, ln)
			})
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return serve
}

// runServer serves the inspection API on ln until ctx is done, then
// shuts the server down gracefully.
func runServer(ctx context.Context, app *application, ln net.Listener) error {
	router := api.NewRouter(api.RouterConfig{
		State:     app.store,
		Reviewer:  app.reviews,
		Metrics:   app.metrics.Handler(),
		Logger:    app.logger,
		RateLimit: app.config.Server.RateLimit,
		Burst:     app.config.Server.Burst,
	})
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting server", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverStopTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
