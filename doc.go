// Package glyphset generates synthetic character image datasets and packs
// them into sharded TFRecord files for model training.
//
// # Overview
//
// Two stages run independently and communicate only through files:
//
//   - Generator renders every label of a vocabulary in every font onto a
//     64x64 grayscale canvas, adds elastically distorted variants, saves
//     each image as JPEG and writes a manifest of (path, label) lines.
//   - Converter reads the manifest, maps labels to class indices through
//     the vocabulary, shuffles, holds out a test split and writes each
//     split across a fixed number of TFRecord shards.
//
// # Quick Start
//
//	vocab, _ := shard.LoadVocabulary("labels.txt")
//	fonts, _ := text.LoadFonts("fonts")
//	res, err := glyphset.NewGenerator().Generate(vocab, fonts, "image-data")
//
//	report, err := glyphset.NewConverter(glyphset.WithShardCounts(3, 1)).
//	    Convert(res.Manifest, vocab, "tfrecords-output")
//
// Both stages are single-threaded and stop at the first error.
//
// # Packages
//
//   - text: font loading, glyph coverage and centered rasterization
//   - distort: elastic distortion with an injectable random source
//   - shard: vocabulary, manifest, train/test split and shard partitioning
//   - tfrecord: TFRecord framing and tf.train.Example encoding
package glyphset

// Version is the current version of the module.
const Version = "0.1.0"
