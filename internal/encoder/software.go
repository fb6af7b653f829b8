package encoder

import "github.com/jspencer/vmap/internal/options"

// SoftwareProfile covers the libx264/libx265 CPU encoders. Software
// encoding needs no device setup or upload filters; it only
// contributes per-stream rate-control arguments.
type SoftwareProfile struct{}

// Software encoding defaults.
const (
	softwarePreset = "medium"
	softwareCRF    = "23"
)

func (SoftwareProfile) Family() Family {
	return FamilySoftware
}

func (SoftwareProfile) Encoders() []string {
	return []string{"libx264", "libx265"}
}

func (SoftwareProfile) DefaultOptions(_ bool) (*options.Options, *options.Options) {
	return options.New(), options.New()
}

func (SoftwareProfile) Filtergraphs() []string {
	return nil
}

func (SoftwareProfile) StreamArgs(streamIndex int) []string {
	return []string{
		streamFlag("-preset", streamIndex), softwarePreset,
		streamFlag("-crf", streamIndex), softwareCRF,
	}
}
