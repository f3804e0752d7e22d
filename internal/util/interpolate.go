package util

import "regexp"

var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Interpolate substitutes ${VAR} and $VAR references the way the compose
// runtime does: unset variables resolve to the empty string rather than
// erroring. lookup returns the value and whether the variable is set.
func Interpolate(s string, lookup func(string) (string, bool)) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := varPattern.FindStringSubmatch(match)
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		if v, ok := lookup(name); ok {
			return v
		}
		return ""
	})
}

// Vars returns the names of all ${VAR}/$VAR references in s, in order of
// first appearance.
func Vars(s string) []string {
	var names []string
	seen := map[string]bool{}
	for _, groups := range varPattern.FindAllStringSubmatch(s, -1) {
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
