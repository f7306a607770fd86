package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP and WebSocket",
	Long: `Start the HTTP API server. The server keeps named cubes in memory
and exposes them as JSON:

  GET  /api/cube/state     - current state (size, faces, move count)
  POST /api/cube/move      - apply a move sequence
  POST /api/cube/scramble  - scramble the cube
  POST /api/cube/reset     - reset to solved
  POST /api/cube/solve     - solve and return the solution steps
  GET  /api/solvers        - list available solve methods
  GET  /ws                 - WebSocket state updates

Every mutating call pushes the new state to all WebSocket clients.
Stop the server with Ctrl+C.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cliLog.Info().Msg("interrupt received, stopping")
		cancel()
	}()

	return web.NewServer().Run(ctx, serveAddr)
}
