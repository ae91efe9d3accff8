package pipeline

import "fmt"

// Error kinds are the machine-readable failure categories persisted with
// a failed job and surfaced through the API.
const (
	KindUpstreamUnavailable = "upstream_unavailable"
	KindValidationFailed    = "validation_failed"
	KindPersistenceFailed   = "persistence_failed"
)

// Error wraps a pipeline step failure with its kind and step number.
type Error struct {
	Step int
	Kind string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline step %d failed (%s): %v", e.Step, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
