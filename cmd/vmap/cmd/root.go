// Package cmd implements the CLI commands for vmap.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jspencer/vmap/internal/config"
	"github.com/jspencer/vmap/internal/observability"
	"github.com/jspencer/vmap/internal/util"
	"github.com/jspencer/vmap/internal/version"
	"github.com/spf13/cobra"
)

// cfg and logger are initialized by PersistentPreRunE before any
// subcommand runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "vmap",
	Short:   "Plan FFmpeg transcode commands from transcode settings",
	Version: version.Short(),
	Long: `vmap translates transcode settings into FFmpeg argument lists.

It probes an input file, decides per video stream whether to copy or
re-encode, builds any required filter graph (black-bar cropping, custom
software filters, hardware upload), and prints the assembled command.

Configuration is read from a YAML file and VMAP_-prefixed environment
variables. Example:
  VMAP_TRANSCODE_VIDEO_ENCODER=hevc_vaapi \
  VMAP_TRANSCODE_APPLY_SMART_FILTERS=true \
  vmap plan movie.mkv`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return initConfig()
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
}

// initConfig loads configuration and builds the logger, applying CLI
// flag overrides on top of file and environment values.
func initConfig() error {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	// Override with CLI flags only if explicitly set
	if rootCmd.PersistentFlags().Changed("log-level") {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		cfg.Logging.Level = strings.ToLower(level)
	}
	if rootCmd.PersistentFlags().Changed("log-format") {
		format, _ := rootCmd.PersistentFlags().GetString("log-format")
		cfg.Logging.Format = strings.ToLower(format)
	}
	// Handle "warning" as an alias for "warn"
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}

	logger = observability.NewLoggerWithWriter(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	// Resolve binaries not pinned by configuration. Missing binaries
	// are reported when a command actually needs them.
	if cfg.FFmpeg.BinaryPath == "" {
		if path, err := util.FindBinary("ffmpeg"); err == nil {
			cfg.FFmpeg.BinaryPath = path
		}
	}
	if cfg.FFmpeg.ProbePath == "" {
		if path, err := util.FindBinary("ffprobe"); err == nil {
			cfg.FFmpeg.ProbePath = path
		}
	}

	return nil
}
