// Package options provides an ordered argument accumulator for FFmpeg
// option maps. Options preserves first-insertion order and resolves
// repeated keys with a last-write-wins rule, so profile defaults can be
// layered under later, more specific overrides.
package options

// Options is an ordered map of FFmpeg option flags to values.
// A flag with an empty value serializes as a bare flag (e.g. -hide_banner).
type Options struct {
	keys   []string
	values map[string]string
}

// New creates an empty Options set.
func New() *Options {
	return &Options{
		values: make(map[string]string),
	}
}

// Set adds or replaces an option. The last write wins; replacing an
// existing key keeps its original position in the serialization order.
func (o *Options) Set(key, value string) *Options {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value for key and whether it is present.
func (o *Options) Get(key string) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Merge applies every option from other onto o in other's order,
// following the same last-write-wins rule as Set.
func (o *Options) Merge(other *Options) *Options {
	if other == nil {
		return o
	}
	for _, k := range other.keys {
		o.Set(k, other.values[k])
	}
	return o
}

// Len returns the number of distinct option keys.
func (o *Options) Len() int {
	return len(o.keys)
}

// Args serializes the options into an ordered argument list.
func (o *Options) Args() []string {
	args := make([]string, 0, len(o.keys)*2)
	for _, k := range o.keys {
		args = append(args, k)
		if v := o.values[k]; v != "" {
			args = append(args, v)
		}
	}
	return args
}
