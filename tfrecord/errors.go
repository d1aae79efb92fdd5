package tfrecord

import "errors"

// Sentinel errors for tfrecord package.
var (
	// ErrCorrupt is returned when a length or payload checksum does not match.
	ErrCorrupt = errors.New("tfrecord: checksum mismatch")

	// ErrMalformed is returned when an Example payload cannot be decoded.
	ErrMalformed = errors.New("tfrecord: malformed example")

	// ErrRecordTooLarge is returned for a length header beyond MaxRecordSize.
	ErrRecordTooLarge = errors.New("tfrecord: record too large")

	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("tfrecord: writer closed")
)
