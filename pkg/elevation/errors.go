package elevation

import (
	"errors"
	"fmt"
)

// ErrNoResults means the API answered successfully but returned an empty
// result set for the requested coordinates.
var ErrNoResults = errors.New("elevation response contained no results")

// APIError represents a non-2xx answer from the elevation API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// DecodeError represents a response body that could not be parsed
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode elevation response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
