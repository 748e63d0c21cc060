package normalize

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the model response parsed successfully but carried
// no usable object (e.g. a literal null).
var ErrEmptyResponse = errors.New("model response contained no work order")

// ResponseParseError indicates the model output was not a valid JSON object
// after cleanup. Raw carries the offending text for diagnostics.
type ResponseParseError struct {
	Raw string
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as a work order: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
