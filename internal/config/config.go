// Package config provides configuration management for vmap using Viper.
// It supports configuration from files, environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Transcode modes.
const (
	ModeStandard = "standard"
	ModeAdvanced = "advanced"
)

// Default configuration values.
const (
	defaultMode          = ModeStandard
	defaultVideoEncoder  = "libx264"
	defaultProbeTimeout  = 30 * time.Second
	defaultDetectTimeout = 2 * time.Minute
	defaultDetectSamples = 7
)

// Config holds all configuration for the application.
type Config struct {
	Transcode TranscodeConfig `mapstructure:"transcode"`
	FFmpeg    FFmpegConfig    `mapstructure:"ffmpeg"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// TranscodeConfig holds the per-run transcode settings. It is treated
// as read-only once a mapper has been configured from it.
type TranscodeConfig struct {
	// Mode selects how arguments are built: "standard" derives them
	// from the settings below, "advanced" is fully manual.
	Mode string `mapstructure:"mode"`

	// MainOptions and AdvancedOptions are whitespace-delimited argument
	// strings that replace the built-in defaults in advanced mode.
	// Empty strings keep the defaults.
	MainOptions     string `mapstructure:"main_options"`
	AdvancedOptions string `mapstructure:"advanced_options"`

	// CustomOptions are extra whitespace-delimited encoder arguments
	// appended per stream in advanced mode.
	CustomOptions string `mapstructure:"custom_options"`

	// VideoEncoder is the target FFmpeg encoder name (libx264,
	// hevc_qsv, h264_vaapi, ...).
	VideoEncoder string `mapstructure:"video_encoder"`

	// MaxMuxingQueueSize sets -max_muxing_queue_size when > 0.
	MaxMuxingQueueSize int `mapstructure:"max_muxing_queue_size"`

	// ApplySmartFilters enables automatically determined filters.
	ApplySmartFilters bool `mapstructure:"apply_smart_filters"`

	// AutocropBlackBars enables black-bar crop detection. Only
	// consulted when ApplySmartFilters is set.
	AutocropBlackBars bool `mapstructure:"autocrop_black_bars"`

	// ApplyCustomFilters enables CustomSoftwareFilters.
	ApplyCustomFilters bool `mapstructure:"apply_custom_filters"`

	// CustomSoftwareFilters is a newline-delimited list of filter
	// expressions applied in order; blank lines are skipped.
	CustomSoftwareFilters string `mapstructure:"custom_software_filters"`
}

// FFmpegConfig holds FFmpeg binary configuration.
type FFmpegConfig struct {
	BinaryPath    string        `mapstructure:"binary_path"`    // Path to ffmpeg binary (empty = resolve from PATH)
	ProbePath     string        `mapstructure:"probe_path"`     // Path to ffprobe binary (empty = resolve from PATH)
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"`  // Timeout for ffprobe invocations
	DetectTimeout time.Duration `mapstructure:"detect_timeout"` // Timeout for black-bar detection
	DetectSamples int           `mapstructure:"detect_samples"` // Sample points for black-bar detection
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, text
	AddSource  bool   `mapstructure:"add_source"`
	TimeFormat string `mapstructure:"time_format"`
}

// Load reads configuration from file and environment variables.
// Environment variables take precedence over file configuration.
// Environment variables are prefixed with VMAP_ and use underscores for
// nesting. Example: VMAP_TRANSCODE_VIDEO_ENCODER=hevc_vaapi.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/vmap")
		v.AddConfigPath("$HOME/.vmap")
	}

	v.SetEnvPrefix("VMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults configures default values for all configuration options.
// This should be called before reading the config file to ensure
// defaults are in place.
func SetDefaults(v *viper.Viper) {
	// Transcode defaults
	v.SetDefault("transcode.mode", defaultMode)
	v.SetDefault("transcode.main_options", "")
	v.SetDefault("transcode.advanced_options", "")
	v.SetDefault("transcode.custom_options", "")
	v.SetDefault("transcode.video_encoder", defaultVideoEncoder)
	v.SetDefault("transcode.max_muxing_queue_size", 0)
	v.SetDefault("transcode.apply_smart_filters", false)
	v.SetDefault("transcode.autocrop_black_bars", false)
	v.SetDefault("transcode.apply_custom_filters", false)
	v.SetDefault("transcode.custom_software_filters", "")

	// FFmpeg defaults
	v.SetDefault("ffmpeg.binary_path", "")
	v.SetDefault("ffmpeg.probe_path", "")
	v.SetDefault("ffmpeg.probe_timeout", defaultProbeTimeout)
	v.SetDefault("ffmpeg.detect_timeout", defaultDetectTimeout)
	v.SetDefault("ffmpeg.detect_samples", defaultDetectSamples)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", time.RFC3339)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validModes := map[string]bool{ModeStandard: true, ModeAdvanced: true}
	if !validModes[c.Transcode.Mode] {
		return fmt.Errorf("transcode.mode must be one of: %s, %s", ModeStandard, ModeAdvanced)
	}
	if c.Transcode.VideoEncoder == "" {
		return fmt.Errorf("transcode.video_encoder is required")
	}
	if c.Transcode.MaxMuxingQueueSize < 0 {
		return fmt.Errorf("transcode.max_muxing_queue_size must not be negative")
	}

	if c.FFmpeg.ProbeTimeout <= 0 {
		return fmt.Errorf("ffmpeg.probe_timeout must be positive")
	}
	if c.FFmpeg.DetectTimeout <= 0 {
		return fmt.Errorf("ffmpeg.detect_timeout must be positive")
	}
	if c.FFmpeg.DetectSamples < 1 {
		return fmt.Errorf("ffmpeg.detect_samples must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// IsAdvanced reports whether the manual argument mode is active.
func (c TranscodeConfig) IsAdvanced() bool {
	return c.Mode == ModeAdvanced
}

// CustomFilterLines returns the non-blank trimmed custom software
// filter expressions in file order.
func (c TranscodeConfig) CustomFilterLines() []string {
	var lines []string
	for _, line := range strings.Split(c.CustomSoftwareFilters, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
