package encoder

import "github.com/jspencer/vmap/internal/options"

// VAAPIProfile covers the VA-API encoders on Linux. VAAPI decodes and
// encodes on hardware surfaces, so the chain must end with an upload
// filter; when any software filter precedes it the planner forces
// nv12 system-memory output so those filters can run.
type VAAPIProfile struct{}

// VAAPI defaults. renderD128 is the first render node on most
// single-GPU systems.
const (
	vaapiDevice = "/dev/dri/renderD128"
	vaapiQP     = "23"
)

func (VAAPIProfile) Family() Family {
	return FamilyVAAPI
}

func (VAAPIProfile) Encoders() []string {
	return []string{"h264_vaapi", "hevc_vaapi", "vp9_vaapi", "av1_vaapi"}
}

func (VAAPIProfile) DefaultOptions(hwDecoding bool) (*options.Options, *options.Options) {
	generic := options.New().
		Set("-vaapi_device", vaapiDevice)
	if hwDecoding {
		generic.
			Set("-hwaccel", "vaapi").
			Set("-hwaccel_device", vaapiDevice).
			Set("-hwaccel_output_format", "vaapi")
	}
	return generic, options.New()
}

func (VAAPIProfile) Filtergraphs() []string {
	return []string{"format=nv12|vaapi,hwupload"}
}

func (VAAPIProfile) StreamArgs(streamIndex int) []string {
	return []string{
		streamFlag("-rc_mode", streamIndex), "CQP",
		streamFlag("-qp", streamIndex), vaapiQP,
	}
}
