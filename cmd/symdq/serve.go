package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/symdq"
	httpAdapter "github.com/aretw0/symdq/pkg/adapters/http"
	"github.com/aretw0/symdq/pkg/observability"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP JSON API",
		Long:  `Starts the symdq engine as a JSON API over HTTP, with Prometheus metrics at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := observability.NewMetrics()
			eng, err := a.engine(symdq.WithHooks(metrics.Hooks()))
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr: ":" + port,
				Handler: httpAdapter.NewHandler(eng,
					httpAdapter.WithMetrics(metrics.Handler()),
					httpAdapter.WithLogger(a.logger),
				),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Starting symdq server on %s (domain %s)\n", srv.Addr, eng.Domain())
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "error", err)
					if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "symdq server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	return cmd
}
