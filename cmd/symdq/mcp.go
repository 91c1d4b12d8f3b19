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

	"github.com/spf13/cobra"

	"github.com/aretw0/symdq/pkg/adapters/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	var (
		transport string
		port      int
	)
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts the symdq engine as an MCP Server, exposing from_screw, transform_point,
is_unit, evaluate_chain and chain_twist as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			srv := mcp.NewServer(eng)

			switch transport {
			case "stdio":
				// Ensure logs don't corrupt JSON-RPC on Stdout
				log.SetOutput(os.Stderr)
				a.logger.Info("Starting symdq MCP Server (Stdio)")
				return srv.ServeStdio()
			case "sse":
				a.logger.Info("Starting symdq MCP Server (SSE)", "port", port)
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				a.logger.Info("MCP Server stopped gracefully")
				return nil
			}
			return fmt.Errorf("unknown transport %q, supported: stdio, sse", transport)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (only for SSE)")
	return cmd
}
