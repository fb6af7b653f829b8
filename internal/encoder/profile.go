package encoder

import (
	"fmt"

	"github.com/jspencer/vmap/internal/options"
)

// Profile describes one encoder family's contribution to a transcode
// plan.
type Profile interface {
	// Family returns the family this profile serves.
	Family() Family

	// Encoders returns the lowercase encoder names this family claims.
	// Sets must be disjoint across families.
	Encoders() []string

	// DefaultOptions returns the generic (input-side) and advanced
	// (output-side) option maps applied once per file. hwDecoding
	// requests hardware-accelerated decode where the family supports
	// it.
	DefaultOptions(hwDecoding bool) (generic, advanced *options.Options)

	// Filtergraphs returns filter fragments that must terminate the
	// stream's filter chain for this family, in order. Empty for
	// families that encode from system-memory frames.
	Filtergraphs() []string

	// StreamArgs returns per-stream tuning arguments for the video
	// stream with the given index. Flags are stream-qualified so
	// multi-stream commands stay unambiguous.
	StreamArgs(streamIndex int) []string
}

// streamFlag qualifies an option flag to one video stream,
// e.g. streamFlag("-crf", 0) -> "-crf:v:0".
func streamFlag(flag string, streamIndex int) string {
	return fmt.Sprintf("%s:v:%d", flag, streamIndex)
}
