package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Transcode: TranscodeConfig{
			Mode:         ModeStandard,
			VideoEncoder: "libx264",
		},
		FFmpeg: FFmpegConfig{
			ProbeTimeout:  30 * time.Second,
			DetectTimeout: 2 * time.Minute,
			DetectSamples: 7,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Load without config file should use defaults
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Transcode defaults
	assert.Equal(t, ModeStandard, cfg.Transcode.Mode)
	assert.Equal(t, "libx264", cfg.Transcode.VideoEncoder)
	assert.Equal(t, 0, cfg.Transcode.MaxMuxingQueueSize)
	assert.False(t, cfg.Transcode.ApplySmartFilters)
	assert.False(t, cfg.Transcode.ApplyCustomFilters)

	// FFmpeg defaults
	assert.Empty(t, cfg.FFmpeg.BinaryPath)
	assert.Equal(t, 30*time.Second, cfg.FFmpeg.ProbeTimeout)
	assert.Equal(t, 7, cfg.FFmpeg.DetectSamples)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
transcode:
  mode: standard
  video_encoder: hevc_vaapi
  apply_smart_filters: true
  autocrop_black_bars: true
  max_muxing_queue_size: 9999
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hevc_vaapi", cfg.Transcode.VideoEncoder)
	assert.True(t, cfg.Transcode.ApplySmartFilters)
	assert.True(t, cfg.Transcode.AutocropBlackBars)
	assert.Equal(t, 9999, cfg.Transcode.MaxMuxingQueueSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VMAP_TRANSCODE_VIDEO_ENCODER", "h264_qsv")
	t.Setenv("VMAP_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "h264_qsv", cfg.Transcode.VideoEncoder)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(_ *Config) {}, ""},
		{"bad mode", func(c *Config) { c.Transcode.Mode = "auto" }, "transcode.mode"},
		{"empty encoder", func(c *Config) { c.Transcode.VideoEncoder = "" }, "video_encoder"},
		{"negative queue", func(c *Config) { c.Transcode.MaxMuxingQueueSize = -1 }, "max_muxing_queue_size"},
		{"zero probe timeout", func(c *Config) { c.FFmpeg.ProbeTimeout = 0 }, "probe_timeout"},
		{"zero samples", func(c *Config) { c.FFmpeg.DetectSamples = 0 }, "detect_samples"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "logfmt" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTranscodeConfig_CustomFilterLines(t *testing.T) {
	cfg := TranscodeConfig{
		CustomSoftwareFilters: "hqdn3d\n\n  scale=1280:-2  \n\t\nunsharp",
	}
	assert.Equal(t, []string{"hqdn3d", "scale=1280:-2", "unsharp"}, cfg.CustomFilterLines())

	empty := TranscodeConfig{CustomSoftwareFilters: "\n  \n"}
	assert.Empty(t, empty.CustomFilterLines())
}

func TestTranscodeConfig_IsAdvanced(t *testing.T) {
	assert.True(t, TranscodeConfig{Mode: ModeAdvanced}.IsAdvanced())
	assert.False(t, TranscodeConfig{Mode: ModeStandard}.IsAdvanced())
}
