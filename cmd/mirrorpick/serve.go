package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mirrorpick/internal/server"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the list files and the upload/save endpoints",
		Long: `Serve the data directory over HTTP together with the maintenance endpoints:

  POST /upload   multipart "file" field, stored under file/<timestamp>-<name>
  POST /save     {"filename": ..., "data": ...} for the allow-listed list files

Press Ctrl+C to stop the server gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :3000)")
	return cmd
}

func runServe(flags *globalFlags, addr string) error {
	a, err := setup(flags, true)
	if err != nil {
		return err
	}
	defer a.close()

	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(a.cfg.DataDir, a.cfg.Server.AllowedFiles, a.bus).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s, serving %s", addr, a.cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
