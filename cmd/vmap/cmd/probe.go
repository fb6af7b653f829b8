package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jspencer/vmap/internal/ffmpeg"
	"github.com/spf13/cobra"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe <input>",
	Short: "Probe a media file and print its streams as JSON",
	Long: `Probe a media file with ffprobe and print the parsed stream and
format information as JSON.

Examples:
  vmap probe movie.mkv
  vmap probe --pretty movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().Bool("pretty", false, "pretty-print JSON output")
}

func runProbe(cmd *cobra.Command, args []string) error {
	prober := ffmpeg.NewProber(cfg.FFmpeg.ProbePath).
		WithTimeout(cfg.FFmpeg.ProbeTimeout)

	result, err := prober.Probe(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("probing input: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
