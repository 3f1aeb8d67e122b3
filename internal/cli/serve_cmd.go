package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the suggestion API over HTTP",
		Long: `Serve the suggestion API:

  POST /api/journal/suggestions            analyze an entry and suggest prompts
  GET  /api/oracle-agent/prompts/{phase}   list catalogue prompts for a phase
  GET  /healthz                            liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return errors.New("server is not configured")
			}
			if addr == "" {
				addr = app.ListenAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			writeLine(cmd.ErrOrStderr(), fmt.Sprintf("%s %s", formatter.Header("Listening on"), addr))
			return app.Serve(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")

	return cmd
}
