package ffmpeg

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfNoFFprobe skips the test if ffprobe is not installed.
func skipIfNoFFprobe(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		t.Skip("ffprobe not installed")
	}
	return path
}

const sampleProbeJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "pix_fmt": "yuv420p",
      "avg_frame_rate": "24000/1001"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 6,
      "channel_layout": "5.1"
    },
    {
      "index": 2,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 600,
      "disposition": {"attached_pic": 1}
    }
  ],
  "format": {
    "filename": "sample.mkv",
    "nb_streams": 3,
    "format_name": "matroska,webm",
    "duration": "5400.123000"
  }
}`

func TestParseProbeOutput(t *testing.T) {
	result, err := ParseProbeOutput([]byte(sampleProbeJSON))
	require.NoError(t, err)

	assert.Len(t, result.Streams, 3)
	assert.Equal(t, "matroska,webm", result.Format.FormatName)
	assert.InDelta(t, 5400.123, result.DurationSeconds(), 0.001)

	video := result.VideoStreams()
	require.Len(t, video, 2)
	assert.Equal(t, "h264", video[0].CodecName)
	assert.Equal(t, "mjpeg", video[1].CodecName)
	assert.Equal(t, 1, video[1].Disposition.AttachedPic)

	first := result.FirstVideoStream()
	require.NotNil(t, first)
	assert.Equal(t, 1920, first.Width)
	assert.Equal(t, 1080, first.Height)
}

func TestParseProbeOutput_Invalid(t *testing.T) {
	_, err := ParseProbeOutput([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseProbeOutput([]byte("{}"))
	assert.Error(t, err)
}

func TestProbeStream_Framerate(t *testing.T) {
	tests := []struct {
		name     string
		stream   ProbeStream
		expected float64
	}{
		{"ntsc film", ProbeStream{AvgFrameRate: "24000/1001"}, 23.976},
		{"pal", ProbeStream{AvgFrameRate: "25/1"}, 25},
		{"fallback to r_frame_rate", ProbeStream{AvgFrameRate: "0/0", RFrameRate: "30/1"}, 30},
		{"plain number", ProbeStream{AvgFrameRate: "24"}, 24},
		{"unknown", ProbeStream{}, 0},
		{"zero denominator", ProbeStream{AvgFrameRate: "24/0"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stream.Framerate(), 0.01)
		})
	}
}

func TestProber_Probe_MissingFile(t *testing.T) {
	path := skipIfNoFFprobe(t)

	prober := NewProber(path)
	_, err := prober.Probe(context.Background(), "/nonexistent/file.mkv")
	assert.Error(t, err)
}
