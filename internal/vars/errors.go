package vars

import "fmt"

// ParseError reports an input source that could not be decoded as
// structured markup and, when the fallback was allowed, could not be parsed
// as key=value text either. It carries the offending source text for
// user-facing diagnostics.
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse some of the extra variables.\nvariables:\n%s", e.Source)
}

// Unwrap exposes the underlying parse failure, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
