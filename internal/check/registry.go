package check

import "github.com/stuartp44/hacs-ducobox-connector/internal/config"

// Check defines the interface for self-registering environment checks run
// by 'hadev validate'.
type Check interface {
	Metadata() Metadata
	Enabled(cfg *config.Config) bool
	Run(cfg *config.Config) []ValidationError
}

// Metadata describes a check for discovery and reporting.
type Metadata struct {
	Name        string // internal key, e.g. "conf-dir"
	DisplayName string // human-readable, e.g. "Config directory"
	Description string // one-line description
}

// ValidationError reports a problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "conf_dir"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry []func() Check

// Register adds a check factory to the global registry.
// Each check calls this in its init().
func Register(factory func() Check) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered check.
func All() []Check {
	out := make([]Check, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
