package ffmpeg

// CommandBuilder assembles the final ffmpeg argument list from a
// transcode plan: accumulated generic options, the input, advanced
// options, and per-stream mapping/encoding argument pairs.
type CommandBuilder struct {
	binary        string
	genericArgs   []string
	input         string
	advancedArgs  []string
	streamArgs    []string
	copyAudio     bool
	copySubtitles bool
	overwrite     bool
	output        string
}

// NewCommandBuilder creates a new ffmpeg command builder. An empty
// path resolves ffmpeg from PATH at invocation time.
func NewCommandBuilder(ffmpegPath string) *CommandBuilder {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &CommandBuilder{binary: ffmpegPath}
}

// GenericArgs appends input-side options (hwaccel setup, loglevel).
func (b *CommandBuilder) GenericArgs(args ...string) *CommandBuilder {
	b.genericArgs = append(b.genericArgs, args...)
	return b
}

// Input sets the input file.
func (b *CommandBuilder) Input(path string) *CommandBuilder {
	b.input = path
	return b
}

// AdvancedArgs appends output-side options (-filter_complex,
// -max_muxing_queue_size).
func (b *CommandBuilder) AdvancedArgs(args ...string) *CommandBuilder {
	b.advancedArgs = append(b.advancedArgs, args...)
	return b
}

// StreamMapping appends one stream's -map pair and its encoding
// arguments.
func (b *CommandBuilder) StreamMapping(mapping, encoding []string) *CommandBuilder {
	b.streamArgs = append(b.streamArgs, mapping...)
	b.streamArgs = append(b.streamArgs, encoding...)
	return b
}

// CopyAudio carries all audio streams through unmodified.
func (b *CommandBuilder) CopyAudio() *CommandBuilder {
	b.copyAudio = true
	return b
}

// CopySubtitles carries all subtitle streams through unmodified.
func (b *CommandBuilder) CopySubtitles() *CommandBuilder {
	b.copySubtitles = true
	return b
}

// Overwrite enables output file overwriting.
func (b *CommandBuilder) Overwrite() *CommandBuilder {
	b.overwrite = true
	return b
}

// Output sets the output file.
func (b *CommandBuilder) Output(path string) *CommandBuilder {
	b.output = path
	return b
}

// Binary returns the ffmpeg binary path the command would run.
func (b *CommandBuilder) Binary() string {
	return b.binary
}

// Build returns the assembled argument list, excluding the binary
// itself.
func (b *CommandBuilder) Build() []string {
	var args []string
	args = append(args, b.genericArgs...)
	if b.input != "" {
		args = append(args, "-i", b.input)
	}
	args = append(args, b.advancedArgs...)
	args = append(args, b.streamArgs...)
	if b.copyAudio {
		args = append(args, "-map", "0:a?", "-c:a", "copy")
	}
	if b.copySubtitles {
		args = append(args, "-map", "0:s?", "-c:s", "copy")
	}
	if b.overwrite {
		args = append(args, "-y")
	}
	if b.output != "" {
		args = append(args, b.output)
	}
	return args
}
