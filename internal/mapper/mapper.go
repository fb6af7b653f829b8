// Package mapper implements the per-file stream mapping logic: deciding
// which video streams to transcode, building their filter chains, and
// producing the -map and encoder argument lists consumed by the command
// assembler.
package mapper

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jspencer/vmap/internal/config"
	"github.com/jspencer/vmap/internal/encoder"
	"github.com/jspencer/vmap/internal/ffmpeg"
	"github.com/jspencer/vmap/internal/filtergraph"
	"github.com/jspencer/vmap/internal/options"
)

// Detector finds black bars in an input file. Implemented by
// ffmpeg.BlackBarDetector.
type Detector interface {
	Detect(ctx context.Context, path string, probe *ffmpeg.ProbeResult) (string, error)
}

// MappingResult is the per-stream output of MapStream: the -map
// argument pair and the ordered encoder argument list. It is immutable
// once returned.
type MappingResult struct {
	StreamMapping  []string `json:"stream_mapping"`
	StreamEncoding []string `json:"stream_encoding"`
}

// imageVideoCodecs are codecs ffprobe reports as video streams that
// are really embedded images (cover art, thumbnails). They are copied,
// never transcoded.
var imageVideoCodecs = map[string]struct{}{
	"alias_pix": {}, "apng": {}, "brender_pix": {}, "dds": {},
	"dpx": {}, "exr": {}, "fits": {}, "gif": {}, "mjpeg": {},
	"mjpegb": {}, "pam": {}, "pbm": {}, "pcx": {}, "pfm": {},
	"pgm": {}, "pgmyuv": {}, "pgx": {}, "photocd": {}, "pictor": {},
	"pixlet": {}, "png": {}, "ppm": {}, "ptx": {}, "sgi": {},
	"sunrast": {}, "tiff": {}, "vc1image": {}, "wmv3image": {},
	"xbm": {}, "xface": {}, "xpm": {}, "xwd": {},
}

// Mapper plans the transcode of one input file. It is configured once
// per file and then consulted sequentially per stream; it is not safe
// for concurrent use and holds no state shared across files.
type Mapper struct {
	log      *slog.Logger
	settings config.TranscodeConfig
	detector Detector

	inputPath string
	probe     *ffmpeg.ProbeResult

	// Crop rectangle detected once per file; "" means no crop.
	cropValue string

	generic  *options.Options
	advanced *options.Options

	// Advanced-mode overrides; nil keeps the built-in baselines.
	mainOverride     []string
	advancedOverride []string
}

// New creates a mapper for the given settings. The settings are
// treated as read-only for the mapper's lifetime.
func New(settings config.TranscodeConfig, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		log:      logger,
		settings: settings,
		generic:  options.New(),
		advanced: options.New(),
	}
}

// WithDetector sets the black-bar detector used during Configure.
// Without one, autocrop is skipped.
func (m *Mapper) WithDetector(d Detector) *Mapper {
	m.detector = d
	return m
}

// Configure initializes the mapper for one input file. It must be
// called exactly once before any per-stream method.
//
// In advanced mode the user-supplied main/advanced tokens replace the
// baselines and nothing else is consulted. In standard mode the muxing
// queue size, black-bar detection, and encoder profile defaults are
// applied in that order.
func (m *Mapper) Configure(ctx context.Context, inputPath string, probe *ffmpeg.ProbeResult) {
	m.inputPath = inputPath
	m.probe = probe
	m.generic = options.New().
		Set("-hide_banner", "").
		Set("-loglevel", "info")
	m.advanced = options.New()

	if m.settings.IsAdvanced() {
		if tokens := strings.Fields(m.settings.MainOptions); len(tokens) > 0 {
			m.mainOverride = tokens
		}
		if tokens := strings.Fields(m.settings.AdvancedOptions); len(tokens) > 0 {
			m.advancedOverride = tokens
		}
		// Advanced mode is fully manual
		return
	}

	if m.settings.MaxMuxingQueueSize > 0 {
		m.advanced.Set("-max_muxing_queue_size", strconv.Itoa(m.settings.MaxMuxingQueueSize))
	}

	if m.settings.ApplySmartFilters && m.settings.AutocropBlackBars {
		m.cropValue = m.detectCrop(ctx)
	}

	fam, ok := encoder.FamilyFor(m.settings.VideoEncoder)
	if !ok {
		// Unknown encoders get no profile defaults; the name is still
		// handed to ffmpeg as-is in case it recognizes it.
		m.log.Debug("no encoder profile matched", "video_encoder", m.settings.VideoEncoder)
		return
	}
	profile, _ := encoder.ProfileFor(fam)

	// Hardware decode stays off except for VAAPI, where decode and
	// encode share the same device surfaces.
	generic, advanced := profile.DefaultOptions(fam == encoder.FamilyVAAPI)
	m.generic.Merge(generic)
	m.advanced.Merge(advanced)
}

// detectCrop runs black-bar detection once for the file. Detection
// failure downgrades to "no crop" rather than aborting the plan.
func (m *Mapper) detectCrop(ctx context.Context) string {
	if m.detector == nil {
		return ""
	}
	crop, err := m.detector.Detect(ctx, m.inputPath, m.probe)
	if err != nil {
		m.log.Warn("black-bar detection failed, not cropping", "error", err)
		return ""
	}
	if crop != "" {
		m.log.Info("detected black bars", "crop", crop)
	}
	return crop
}

// NeedsProcessing reports whether the stream must be transcoded.
// Image video streams (embedded cover art) are copied; everything else
// is transcoded.
func (m *Mapper) NeedsProcessing(stream ffmpeg.ProbeStream) bool {
	// TODO: skip streams already encoded with the target codec once
	// the force-encode setting exists to override it.
	_, isImage := imageVideoCodecs[strings.ToLower(stream.CodecName)]
	return !isImage
}

// BuildFilterChain builds the filter graph for the given video stream
// index. It returns the final output label and the serialized graph,
// or ("", "") when no filters apply — the common case, meaning no
// -filter_complex should be emitted.
func (m *Mapper) BuildFilterChain(streamIndex int) (string, string) {
	var softwareFilters []string
	if m.settings.ApplySmartFilters && m.settings.AutocropBlackBars && m.cropValue != "" {
		softwareFilters = append(softwareFilters, "crop="+m.cropValue)
	}
	if m.settings.ApplyCustomFilters {
		softwareFilters = append(softwareFilters, m.settings.CustomFilterLines()...)
	}

	var hardwareFilters []string
	if fam, ok := encoder.FamilyFor(m.settings.VideoEncoder); ok {
		profile, _ := encoder.ProfileFor(fam)
		hardwareFilters = profile.Filtergraphs()
		if fam == encoder.FamilyVAAPI && len(softwareFilters) > 0 {
			// Software filters need system-memory frames, so the VAAPI
			// decoder must emit nv12 instead of hardware surfaces.
			m.generic.Set("-hwaccel_output_format", "nv12")
		}
	}

	if len(softwareFilters) == 0 && len(hardwareFilters) == 0 {
		return "", ""
	}

	chain := filtergraph.NewChain(streamIndex)
	for _, expr := range softwareFilters {
		chain.Append(expr)
	}
	for _, expr := range hardwareFilters {
		chain.Append(expr)
	}
	return chain.FinalLabel(), chain.String()
}

// MapStream produces the mapping result for a video stream that
// NeedsProcessing. streamIndex is the zero-based index among video
// streams, used for stream specifiers and filter labels.
func (m *Mapper) MapStream(stream ffmpeg.ProbeStream, streamIndex int) MappingResult {
	streamSpecifier := fmt.Sprintf("v:%d", streamIndex)
	mapIdentifier := "0:" + streamSpecifier

	if m.settings.IsAdvanced() {
		encoding := []string{"-c:" + streamSpecifier, m.settings.VideoEncoder}
		encoding = append(encoding, strings.Fields(m.settings.CustomOptions)...)
		return MappingResult{
			StreamMapping:  []string{"-map", mapIdentifier},
			StreamEncoding: encoding,
		}
	}

	finalLabel, graph := m.BuildFilterChain(streamIndex)
	if graph != "" {
		mapIdentifier = "[" + finalLabel + "]"
		// One video stream is assumed; a second graph would replace
		// this value rather than merge.
		m.advanced.Set("-filter_complex", graph)
	}

	encoding := []string{"-c:" + streamSpecifier, m.settings.VideoEncoder}
	if profile, ok := encoder.ProfileForEncoder(m.settings.VideoEncoder); ok {
		encoding = append(encoding, profile.StreamArgs(streamIndex)...)
	}

	m.log.Debug("mapped stream",
		"stream", stream.Index,
		"codec", stream.CodecName,
		"map", mapIdentifier)

	return MappingResult{
		StreamMapping:  []string{"-map", mapIdentifier},
		StreamEncoding: encoding,
	}
}

// CropValue returns the cached crop rectangle detected during
// Configure, or "" when none applies.
func (m *Mapper) CropValue() string {
	return m.cropValue
}

// GenericArgs returns the accumulated input-side arguments.
func (m *Mapper) GenericArgs() []string {
	return m.generic.Args()
}

// MainArgs returns the main argument override from advanced mode, or
// nil when the built-in baseline (none) applies.
func (m *Mapper) MainArgs() []string {
	return m.mainOverride
}

// AdvancedArgs returns the accumulated output-side arguments, or the
// advanced-mode override when one was supplied.
func (m *Mapper) AdvancedArgs() []string {
	if m.advancedOverride != nil {
		return m.advancedOverride
	}
	return m.advanced.Args()
}

// GenericOptions exposes the generic option map for inspection.
func (m *Mapper) GenericOptions() *options.Options {
	return m.generic
}

// AdvancedOptions exposes the advanced option map for inspection.
func (m *Mapper) AdvancedOptions() *options.Options {
	return m.advanced
}
