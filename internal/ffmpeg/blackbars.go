package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

// cropPattern matches cropdetect suggestions in ffmpeg stderr output,
// e.g. "crop=1920:800:0:140".
var cropPattern = regexp.MustCompile(`crop=(\d+):(\d+):(\d+):(\d+)`)

// BlackBarDetector samples a file with ffmpeg's cropdetect filter to
// find letterbox/pillarbox black bars. Detection runs once per file;
// the result is a crop rectangle "w:h:x:y", or empty when the frame
// needs no cropping.
type BlackBarDetector struct {
	ffmpegPath string
	timeout    time.Duration
	samples    int
}

// NewBlackBarDetector creates a detector. An empty path resolves
// ffmpeg from PATH at invocation time.
func NewBlackBarDetector(ffmpegPath string) *BlackBarDetector {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &BlackBarDetector{
		ffmpegPath: ffmpegPath,
		timeout:    2 * time.Minute,
		samples:    7,
	}
}

// WithTimeout sets the overall detection timeout.
func (d *BlackBarDetector) WithTimeout(timeout time.Duration) *BlackBarDetector {
	d.timeout = timeout
	return d
}

// WithSamples sets how many points across the file are sampled.
func (d *BlackBarDetector) WithSamples(samples int) *BlackBarDetector {
	if samples > 0 {
		d.samples = samples
	}
	return d
}

// Detect runs cropdetect at evenly spaced sample points and returns
// the most frequently suggested crop rectangle. It returns "" when the
// suggestion covers the full frame or no suggestion was produced.
func (d *BlackBarDetector) Detect(ctx context.Context, path string, probe *ProbeResult) (string, error) {
	video := probe.FirstVideoStream()
	if video == nil {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	duration := probe.DurationSeconds()
	counts := make(map[string]int)
	var lastErr error

	for i := 1; i <= d.samples; i++ {
		// Skip the head and tail of the file; intros and credits
		// routinely fade to black and skew detection.
		offset := duration * float64(i) / float64(d.samples+1)
		crops, err := d.sample(ctx, path, offset)
		if err != nil {
			lastErr = err
			continue
		}
		for _, crop := range crops {
			counts[crop]++
		}
	}

	if len(counts) == 0 && lastErr != nil {
		return "", fmt.Errorf("detecting black bars in %s: %w", path, lastErr)
	}

	return chooseCrop(counts, video), nil
}

// chooseCrop picks the most frequently suggested crop rectangle,
// returning "" when nothing was suggested or the winner covers the
// full frame.
func chooseCrop(counts map[string]int, video *ProbeStream) string {
	best := ""
	bestCount := 0
	for crop, count := range counts {
		if count > bestCount {
			best, bestCount = crop, count
		}
	}

	if best == fmt.Sprintf("%d:%d:0:0", video.Width, video.Height) {
		return ""
	}
	return best
}

// sample decodes a short window at the given offset through cropdetect
// and returns the suggested crop values.
func (d *BlackBarDetector) sample(ctx context.Context, path string, offset float64) ([]string, error) {
	args := []string{
		"-hide_banner",
		"-ss", strconv.FormatFloat(offset, 'f', 2, 64),
		"-i", path,
		"-vframes", "30",
		"-vf", "cropdetect=24:16:0",
		"-f", "null", "-",
	}

	cmd := exec.CommandContext(ctx, d.ffmpegPath, args...)
	// cropdetect reports on stderr; a nonzero exit with usable
	// suggestions still counts.
	output, err := cmd.CombinedOutput()
	crops := parseCropValues(output)
	if len(crops) == 0 && err != nil {
		return nil, fmt.Errorf("running cropdetect: %w", err)
	}
	return crops, nil
}

// parseCropValues extracts every cropdetect suggestion from ffmpeg
// output.
func parseCropValues(output []byte) []string {
	matches := cropPattern.FindAllSubmatch(output, -1)
	crops := make([]string, 0, len(matches))
	for _, m := range matches {
		crops = append(crops, fmt.Sprintf("%s:%s:%s:%s", m[1], m[2], m[3], m[4]))
	}
	return crops
}
