package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/pkg/live"
)

func serveCmd() *cobra.Command {
	var (
		file string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live bridge",
		Long: `Compile the route table and serve the live bridge endpoints:

  /live    WebSocket endpoint for the browser client
  /routes  JSON listing of the registered routes

A connected browser tab mirrors every navigation the router performs.

Examples:
  wayfind serve
  wayfind serve --addr=:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(file, addr)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", config.FileName, "Route table file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8391", "Address to listen on")

	return cmd
}

func runServe(file, addr string) error {
	f, err := config.LoadFile(file)
	if err != nil {
		return err
	}

	bridge := live.NewBridge("/")

	cfg := f.Config()
	cfg.History = bridge

	router, err := buildRouter(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: live.NewServer(bridge, router.Engine()),
	}

	printBanner()
	info("serving %d routes from %s", len(router.Routes()), f.Path())
	success("listening on http://%s", addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
