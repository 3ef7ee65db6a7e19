// Package cmd wires the command-line surface: the interactive editor
// and the stored-document management commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mindgrid/config"
)

var version = "0.1.0"

var (
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	subtle = color.New(color.FgHiBlack)
)

var (
	flagDB       string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:     "mindgrid [file]",
	Short:   "mindgrid — a terminal mind-map editor",
	Long:    "mindgrid is an interactive node-and-edge diagram editor for the terminal.",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = config.EnsureExists()
	},
	RunE: runEdit,
}

func init() {
	rootCmd.SetVersionTemplate("mindgrid {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the document database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		editCmd(),
		docsCmd(),
	)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() *config.Config {
	cfg := config.Load()
	if flagDB != "" {
		cfg.Storage.DatabasePath = flagDB
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds a file-sink logger; the terminal belongs to the UI.
func newLogger(cfg *config.Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return zap.NewNop()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.Log.File}
	zcfg.ErrorOutputPaths = []string{cfg.Log.File}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
