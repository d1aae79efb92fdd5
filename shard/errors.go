package shard

import (
	"errors"
	"fmt"
)

// Sentinel errors for shard package.
var (
	// ErrUnknownLabel is returned when a manifest label is not in the vocabulary.
	ErrUnknownLabel = errors.New("shard: label not in vocabulary")

	// ErrEmptyLabel is returned for a blank line inside a vocabulary file.
	ErrEmptyLabel = errors.New("shard: empty label")

	// ErrDuplicateLabel is returned when a vocabulary repeats a label.
	ErrDuplicateLabel = errors.New("shard: duplicate label")

	// ErrMalformedManifest is returned for a manifest line without exactly
	// two fields.
	ErrMalformedManifest = errors.New("shard: malformed manifest line")
)

// LineError attaches a 1-based line number to a parse error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
