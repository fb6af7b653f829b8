package encoder

import "github.com/jspencer/vmap/internal/options"

// QSVProfile covers the Intel Quick Sync encoders. QSV needs a hw
// device initialized up front and frames uploaded to QSV surfaces at
// the end of the filter chain.
type QSVProfile struct{}

// QSV encoding defaults.
const (
	qsvPreset  = "medium"
	qsvQuality = "23"
)

func (QSVProfile) Family() Family {
	return FamilyQSV
}

func (QSVProfile) Encoders() []string {
	return []string{"h264_qsv", "hevc_qsv", "av1_qsv"}
}

func (QSVProfile) DefaultOptions(hwDecoding bool) (*options.Options, *options.Options) {
	generic := options.New().
		Set("-init_hw_device", "qsv=hw").
		Set("-filter_hw_device", "hw")
	if hwDecoding {
		generic.
			Set("-hwaccel", "qsv").
			Set("-hwaccel_output_format", "qsv")
	}
	return generic, options.New()
}

func (QSVProfile) Filtergraphs() []string {
	return []string{"hwupload=extra_hw_frames=64,format=qsv"}
}

func (QSVProfile) StreamArgs(streamIndex int) []string {
	return []string{
		streamFlag("-preset", streamIndex), qsvPreset,
		streamFlag("-global_quality", streamIndex), qsvQuality,
	}
}
