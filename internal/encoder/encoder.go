// Package encoder provides the encoder family registry and per-family
// argument profiles used when planning a transcode.
//
// Encoder names (libx264, hevc_qsv, h264_vaapi, ...) are grouped into
// disjoint families. The family determines which hardware setup
// arguments, mandatory filter fragments, and per-stream tuning
// arguments apply. Adding a new family means adding a Family constant,
// a Profile implementation, and a registry entry.
package encoder

import "strings"

// Family identifies a group of mutually exclusive encoder names.
type Family string

// Encoder family constants.
const (
	FamilySoftware Family = "software" // libx264 / libx265
	FamilyQSV      Family = "qsv"      // Intel Quick Sync
	FamilyVAAPI    Family = "vaapi"    // VA-API (Linux)
	FamilyNVENC    Family = "nvenc"    // NVIDIA NVENC
)

// String returns the string representation of the family.
func (f Family) String() string {
	return string(f)
}

// registry maps each family to its profile. Families must claim
// disjoint encoder-name sets; TestFamiliesDisjoint enforces this.
var registry = map[Family]Profile{
	FamilySoftware: SoftwareProfile{},
	FamilyQSV:      QSVProfile{},
	FamilyVAAPI:    VAAPIProfile{},
	FamilyNVENC:    NVENCProfile{},
}

// Families returns all registered families.
func Families() []Family {
	return []Family{FamilySoftware, FamilyQSV, FamilyVAAPI, FamilyNVENC}
}

// FamilyFor returns the family claiming the given encoder name.
// The lookup is case-insensitive. Unknown encoders return false; the
// planner treats that as "no profile defaults" rather than an error so
// the explicit encoder name is still passed through to FFmpeg.
func FamilyFor(encoderName string) (Family, bool) {
	name := strings.ToLower(strings.TrimSpace(encoderName))
	for _, fam := range Families() {
		for _, enc := range registry[fam].Encoders() {
			if enc == name {
				return fam, true
			}
		}
	}
	return "", false
}

// ProfileFor returns the profile registered for a family.
func ProfileFor(family Family) (Profile, bool) {
	p, ok := registry[family]
	return p, ok
}

// ProfileForEncoder resolves an encoder name directly to its profile.
func ProfileForEncoder(encoderName string) (Profile, bool) {
	fam, ok := FamilyFor(encoderName)
	if !ok {
		return nil, false
	}
	return registry[fam], true
}
