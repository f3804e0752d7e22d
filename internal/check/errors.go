package check

import "fmt"

// CheckError wraps an error with the check that produced it.
type CheckError struct {
	Check string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %v", e.Check, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
