package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Wyydra/board/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and the live board page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
