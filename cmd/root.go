package cmd

import (
	"fmt"
	"os"

	"i18next-typesafe/core/config"
	"i18next-typesafe/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "i18next-typesafe",
	Short: "Type-safe i18next keys and translation validation",
	Long: `i18next-typesafe generates a TypeScript union of every translation key
and validates locale catalogs: cross-language synchronization, unused
translation blocks and unused translation keys.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads best on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// session is the resolved configuration and logger shared by every command.
type session struct {
	cfg  *config.Config
	logg *zap.Logger
}

// setup loads configuration with the command's flags applied and builds the logger.
func setup(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(".", configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if cfg.File != "" {
		logg.Debug("Using config file", zap.String("path", cfg.File))
	}
	return &session{cfg: cfg, logg: logg}, nil
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default .i18next-typesafe.json or i18next-typesafe.config.json)")
	flags.StringP("input", "i", "", "canonical locale file")
	flags.StringP("locales", "l", "", "directory holding <lang>.json files")
	flags.StringP("source", "s", "", "application source root to scan")
	flags.StringSlice("languages", nil, "comma-separated language codes to compare")
	flags.String("backend", "", "locale backend: fs, s3 or mysql")
	flags.String("log-level", "", "log level: debug, info, warn or error")
}
