package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// TransportError indicates the generation API could not be reached or timed out.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// QuotaError indicates the generation API rejected the call for rate-limit
// or authentication reasons. Callers must not retry these.
type QuotaError struct {
	StatusCode int
	Cause      error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("generation quota/auth failure (status %d): %v", e.StatusCode, e.Cause)
}

func (e *QuotaError) Unwrap() error { return e.Cause }

// EmptyResponseError indicates the API answered but returned no usable content.
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("generation returned no usable content: %s", e.Reason)
}

// classifyError maps a raw provider error onto the client's failure taxonomy.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusUnauthorized, http.StatusForbidden:
			return &QuotaError{StatusCode: apiErr.Code, Cause: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TransportError{Cause: err}
	}
	return &TransportError{Cause: err}
}
