package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandBuilder_Build(t *testing.T) {
	b := NewCommandBuilder("/usr/bin/ffmpeg").
		GenericArgs("-hide_banner", "-loglevel", "info").
		GenericArgs("-vaapi_device", "/dev/dri/renderD128").
		Input("/media/in.mkv").
		AdvancedArgs("-max_muxing_queue_size", "9999").
		AdvancedArgs("-filter_complex", "[0:v:0]crop=1920:800:0:140[0:vf:0-1]").
		StreamMapping(
			[]string{"-map", "[0:vf:0-1]"},
			[]string{"-c:v:0", "hevc_vaapi", "-rc_mode:v:0", "CQP", "-qp:v:0", "23"},
		).
		CopyAudio().
		CopySubtitles().
		Overwrite().
		Output("/media/out.mkv")

	assert.Equal(t, "/usr/bin/ffmpeg", b.Binary())
	assert.Equal(t, []string{
		"-hide_banner", "-loglevel", "info",
		"-vaapi_device", "/dev/dri/renderD128",
		"-i", "/media/in.mkv",
		"-max_muxing_queue_size", "9999",
		"-filter_complex", "[0:v:0]crop=1920:800:0:140[0:vf:0-1]",
		"-map", "[0:vf:0-1]",
		"-c:v:0", "hevc_vaapi", "-rc_mode:v:0", "CQP", "-qp:v:0", "23",
		"-map", "0:a?", "-c:a", "copy",
		"-map", "0:s?", "-c:s", "copy",
		"-y",
		"/media/out.mkv",
	}, b.Build())
}

func TestCommandBuilder_Minimal(t *testing.T) {
	args := NewCommandBuilder("").
		Input("in.mp4").
		StreamMapping([]string{"-map", "0:v:0"}, []string{"-c:v:0", "libx264"}).
		Output("out.mp4").
		Build()

	assert.Equal(t, []string{
		"-i", "in.mp4",
		"-map", "0:v:0",
		"-c:v:0", "libx264",
		"out.mp4",
	}, args)
}

func TestCommandBuilder_DefaultBinary(t *testing.T) {
	assert.Equal(t, "ffmpeg", NewCommandBuilder("").Binary())
}
