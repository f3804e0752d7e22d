package stack

import "strings"

// VolumeMount represents a bind of a host path into the container.
type VolumeMount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// Spec returns the compose volume entry, e.g. "./src:/config:ro".
func (v VolumeMount) Spec() string {
	s := v.Source + ":" + v.Target
	if v.ReadOnly {
		s += ":ro"
	}
	return s
}

// ParseVolumeMount parses a compose volume string like "src:dst" or
// "src:dst:ro". The source may itself contain ':' only in the degenerate
// single-element case, which maps to an anonymous volume and is kept as-is
// in Source.
func ParseVolumeMount(s string) VolumeMount {
	parts := strings.SplitN(s, ":", 3)
	vm := VolumeMount{Source: parts[0]}
	if len(parts) > 1 {
		vm.Target = parts[1]
	}
	if len(parts) > 2 && parts[2] == "ro" {
		vm.ReadOnly = true
	}
	return vm
}
