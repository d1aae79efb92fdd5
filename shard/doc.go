// Package shard holds the dataset bookkeeping between image generation and
// record writing: the label vocabulary, the image manifest, and the
// deterministic train/test split and shard partitioning.
package shard
