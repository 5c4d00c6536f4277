package nlquery

import (
	"errors"
)

// ErrEmptyQuestion is the classifier's only hard failure: an empty or
// whitespace-only question. Everything else degrades to a low-confidence
// best-effort intent.
var ErrEmptyQuestion = &ClassificationError{Reason: "question is empty"}

// ClassificationError means the classifier could not produce even a
// low-confidence guess.
type ClassificationError struct {
	Reason string
}

func (e *ClassificationError) Error() string {
	return "intent classification failed: " + e.Reason
}

// BuildError means the builder detected an invariant violation: a filter
// referencing a table outside the intent, or a column absent from the
// catalog. It indicates a defect in the classifier or catalog, so the
// offending intent travels with the error for diagnosis.
type BuildError struct {
	Reason string
	Intent *QueryIntent
}

func (e *BuildError) Error() string {
	return "query build failed: " + e.Reason
}

// IsClassificationError reports whether err is a ClassificationError.
func IsClassificationError(err error) bool {
	var ce *ClassificationError
	return errors.As(err, &ce)
}

// AsBuildError unwraps a BuildError if err carries one.
func AsBuildError(err error) (*BuildError, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
