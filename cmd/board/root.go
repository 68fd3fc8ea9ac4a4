package main

import (
	"fmt"
	"os"

	"github.com/Wyydra/board/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "board",
	Short:         "Shared message board",
	Long:          `Post, list and delete messages stored in a shared remote table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		c, err := config.Load(files...)
		if err != nil {
			return fmt.Errorf("%w: %w", errConfig, err)
		}
		cfg = c

		zerolog.SetGlobalLevel(cfg.Level())
		w := zerolog.ConsoleWriter{Out: os.Stderr}
		log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
}
