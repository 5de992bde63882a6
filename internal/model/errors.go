package model

import (
	"errors"
	"fmt"
)

// ErrNoVersion is returned by Load/Parse when the generator comment that
// carries the COPASI version is absent from the document.
var ErrNoVersion = errors.New("version marker not found in model file")

// UnsupportedVersionError reports a document whose COPASI version is not on
// the tested allow-list. The document is still usable; callers decide
// whether to warn and continue.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("the model file version (%s) is not supported", e.Version)
}

// TargetNotFoundError reports that the structural pattern of a mutation
// matched the document zero times: the document is not in the state the
// operation expects.
type TargetNotFoundError struct {
	Op string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("%s: no matching region found in the model file", e.Op)
}

// AmbiguousMatchError reports that the structural pattern of a mutation
// matched more than once where exactly one match is required. The document
// is left unchanged.
type AmbiguousMatchError struct {
	Op      string
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%s: pattern matched %d regions, expected exactly one", e.Op, e.Matches)
}

// EntityNotFoundError reports a name that could not be resolved against an
// ordered entity list.
type EntityNotFoundError struct {
	Name string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("the element %q was not found", e.Name)
}
