package pipeline

import "fmt"

// ServiceUnavailableError indicates the generation service failed in a way
// the pipeline does not retry (transport or quota). The caller decides on
// user-facing messaging.
type ServiceUnavailableError struct {
	Cause error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("generation service unavailable: %v", e.Cause)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Cause }
