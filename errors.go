package glyphset

import "errors"

// Sentinel errors for glyphset package.
var (
	// ErrInvalidShardCount is returned when a split is configured with
	// fewer than one shard.
	ErrInvalidShardCount = errors.New("glyphset: shard count must be at least 1")

	// ErrNoFonts is returned when Generate is called without fonts.
	ErrNoFonts = errors.New("glyphset: no fonts")

	// ErrInvalidRecord is returned when a shard record lacks a feature or
	// holds an image that is not a grayscale image of the expected size.
	ErrInvalidRecord = errors.New("glyphset: invalid record")
)
