package dataset

// errors.go defines the error taxonomy for the dataset package.
//
// The three error kinds map to three very different caller reactions:
//   - LoadError: the source file is missing or unreadable. No table exists;
//     the session cannot proceed.
//   - ParseError: a value in the source violates its expected type during
//     normalization. Continuing would silently corrupt downstream equality
//     comparisons, so normalization aborts.
//   - InvalidInputError: a single search call received a missing or malformed
//     key. Only that call fails; the table stays usable.

import "fmt"

// LoadError reports that the raw source could not be located or read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError reports a cell whose value does not match the column's type.
// Line is the 1-based data row number in the source file (0 when unknown).
type ParseError struct {
	Column string
	Line   int
	Value  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s at row %d: invalid value %q", e.Column, e.Line, e.Value)
	}
	return fmt.Sprintf("parse %s: invalid value %q", e.Column, e.Value)
}

// InvalidInputError reports a missing or malformed search key. It invalidates
// the one search call that received it, nothing else.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}
