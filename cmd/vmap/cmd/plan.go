package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jspencer/vmap/internal/ffmpeg"
	"github.com/jspencer/vmap/internal/mapper"
	"github.com/jspencer/vmap/internal/observability"
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <input>",
	Short: "Build the FFmpeg command for an input file",
	Long: `Probe the input file and build the full FFmpeg argument list from
the configured transcode settings.

The command is printed, not executed. Use --json for a structured plan
including the per-stream mapping results.

Examples:
  # Plan with settings from config/env
  vmap plan movie.mkv

  # Structured output
  vmap plan --json movie.mkv

  # Explicit output path
  vmap plan --output /tmp/movie-small.mkv movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().String("output", "", "output file path (default <input>-transcoded.mkv)")
	planCmd.Flags().Bool("json", false, "print the plan as JSON")
	planCmd.Flags().Bool("overwrite", false, "add -y to overwrite the output file")
}

// Plan is the structured output of the plan command.
type Plan struct {
	Input     string                 `json:"input"`
	Output    string                 `json:"output"`
	Binary    string                 `json:"binary"`
	CropValue string                 `json:"crop_value,omitempty"`
	Streams   []mapper.MappingResult `json:"streams"`
	Args      []string               `json:"args"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "-transcoded.mkv"
	}

	prober := ffmpeg.NewProber(cfg.FFmpeg.ProbePath).
		WithTimeout(cfg.FFmpeg.ProbeTimeout)
	probe, err := prober.Probe(ctx, input)
	if err != nil {
		return fmt.Errorf("probing input: %w", err)
	}

	detector := ffmpeg.NewBlackBarDetector(cfg.FFmpeg.BinaryPath).
		WithTimeout(cfg.FFmpeg.DetectTimeout).
		WithSamples(cfg.FFmpeg.DetectSamples)

	m := mapper.New(cfg.Transcode, observability.WithComponent(logger, "mapper")).
		WithDetector(detector)
	m.Configure(ctx, input, probe)

	// Map every video stream; image streams are copied, the rest are
	// transcoded. The index counts video streams only.
	var results []mapper.MappingResult
	videoIndex := 0
	for _, stream := range probe.VideoStreams() {
		if m.NeedsProcessing(stream) {
			results = append(results, m.MapStream(stream, videoIndex))
		} else {
			specifier := fmt.Sprintf("v:%d", videoIndex)
			results = append(results, mapper.MappingResult{
				StreamMapping:  []string{"-map", "0:" + specifier},
				StreamEncoding: []string{"-c:" + specifier, "copy"},
			})
		}
		videoIndex++
	}

	// Options must be read after mapping: filter graphs and pixel
	// format overrides are registered per stream.
	builder := ffmpeg.NewCommandBuilder(cfg.FFmpeg.BinaryPath).
		GenericArgs(m.GenericArgs()...).
		GenericArgs(m.MainArgs()...).
		Input(input).
		AdvancedArgs(m.AdvancedArgs()...)
	for _, result := range results {
		builder.StreamMapping(result.StreamMapping, result.StreamEncoding)
	}
	builder.CopyAudio().CopySubtitles()
	if overwrite, _ := cmd.Flags().GetBool("overwrite"); overwrite {
		builder.Overwrite()
	}
	builder.Output(output)

	plan := Plan{
		Input:     input,
		Output:    output,
		Binary:    builder.Binary(),
		CropValue: m.CropValue(),
		Streams:   results,
		Args:      builder.Build(),
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	fmt.Println(plan.Binary + " " + strings.Join(plan.Args, " "))
	return nil
}
