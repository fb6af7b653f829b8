package encoder

import "github.com/jspencer/vmap/internal/options"

// NVENCProfile covers the NVIDIA NVENC encoders. NVENC accepts
// system-memory frames directly, so no mandatory filter fragments are
// needed; hardware decode via CUDA is available on request.
type NVENCProfile struct{}

// NVENC encoding defaults. p4 is the balanced preset on the p1-p7
// scale.
const (
	nvencPreset  = "p4"
	nvencQuality = "23"
)

func (NVENCProfile) Family() Family {
	return FamilyNVENC
}

func (NVENCProfile) Encoders() []string {
	return []string{"h264_nvenc", "hevc_nvenc", "av1_nvenc"}
}

func (NVENCProfile) DefaultOptions(hwDecoding bool) (*options.Options, *options.Options) {
	generic := options.New()
	if hwDecoding {
		generic.
			Set("-hwaccel", "cuda").
			Set("-hwaccel_output_format", "cuda")
	}
	return generic, options.New()
}

func (NVENCProfile) Filtergraphs() []string {
	return nil
}

func (NVENCProfile) StreamArgs(streamIndex int) []string {
	return []string{
		streamFlag("-preset", streamIndex), nvencPreset,
		streamFlag("-rc", streamIndex), "vbr",
		streamFlag("-cq", streamIndex), nvencQuality,
	}
}
