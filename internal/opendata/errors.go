package opendata

import "fmt"

// ParseError marks a record that violates the minimum required shape (missing
// envelope key, missing identifier, malformed JSON). Callers skip the record
// with a warning instead of aborting the run.
type ParseError struct {
	Family string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s record: %s: %v", e.Family, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s record: %s", e.Family, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
