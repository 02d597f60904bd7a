package service

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned when scoring is attempted before an artifact
// bundle has been loaded. Callers may retry once the service is ready.
var ErrNotReady = errors.New("model artifacts not loaded")

// EncodingError marks a record that passed boundary validation but cannot be
// encoded against the loaded bundle's tables, e.g. a category label the
// trained encoders have never seen. It affects only the failing request.
type EncodingError struct {
	Feature string
	Value   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode feature %q: value %q is unknown to the loaded model", e.Feature, e.Value)
}

// AttributionError marks a failure of the attribution engine on an otherwise
// valid encoded vector. The whole request fails: a result is never returned
// without its full set of reason codes.
type AttributionError struct {
	Err error
}

func (e *AttributionError) Error() string {
	return fmt.Sprintf("attribution failed: %v", e.Err)
}

func (e *AttributionError) Unwrap() error { return e.Err }
