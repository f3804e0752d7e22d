package check

import (
	"fmt"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

// Result holds the outcome of a single check run.
type Result struct {
	Check   Metadata
	Skipped bool
	Errors  []ValidationError
}

// RunAll runs every registered check against cfg. The returned error is
// non-nil when any check reported problems; it is a *CheckError naming
// the first failing check so callers can attribute the failure.
func RunAll(cfg *config.Config) ([]Result, error) {
	var results []Result
	var firstErr error
	failed := 0

	for _, c := range All() {
		meta := c.Metadata()

		if !c.Enabled(cfg) {
			results = append(results, Result{Check: meta, Skipped: true})
			continue
		}

		errs := c.Run(cfg)
		results = append(results, Result{Check: meta, Errors: errs})

		if len(errs) > 0 {
			failed += len(errs)
			if firstErr == nil {
				firstErr = &CheckError{Check: meta.Name, Err: fmt.Errorf("%s", errs[0].Message)}
			}
		}
	}

	if firstErr != nil && failed > 1 {
		firstErr = fmt.Errorf("%d validation errors, first: %w", failed, firstErr)
	}
	return results, firstErr
}
