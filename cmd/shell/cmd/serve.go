package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/compliance-shell/internal/app"
	"github.com/nfrund/compliance-shell/internal/config"
	"github.com/nfrund/compliance-shell/internal/logging"
	"github.com/nfrund/compliance-shell/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.HTTPAddr = serveAddr
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := do.Invoke[*server.Server](app.New(cfg))
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides SHELL_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
