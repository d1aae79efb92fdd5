package glyphset

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/gogpu/glyphset/internal/image"
	"github.com/gogpu/glyphset/tfrecord"
)

// ShardStats summarizes the records of one shard file.
type ShardStats struct {
	Path    string
	Records int

	// Labels counts records per class index.
	Labels map[int64]int
}

// InspectShard reads every record of the shard at path and counts them per
// label. Checksums are always verified.
//
// When size is non-zero, each record must also carry a label and an
// encoded grayscale image of exactly size pixels, or InspectShard fails
// with an error wrapping ErrInvalidRecord that names the 1-based record.
func InspectShard(path string, size stdimage.Point) (*ShardStats, error) {
	stats := &ShardStats{Path: path, Labels: map[int64]int{}}
	verify := size != stdimage.Point{}

	err := tfrecord.ForEach(path, func(data []byte) error {
		ex, err := tfrecord.UnmarshalExample(data)
		if err != nil {
			return err
		}
		stats.Records++

		label, ok := ex.Label()
		if ok {
			stats.Labels[label]++
		}
		if !verify {
			return nil
		}
		if !ok {
			return fmt.Errorf("%w: record %d: missing %s", ErrInvalidRecord, stats.Records, tfrecord.LabelKey)
		}
		if err := verifyImage(ex, size); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrInvalidRecord, stats.Records, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glyphset: inspect %s: %w", path, err)
	}
	return stats, nil
}

// verifyImage checks that the encoded image is single-channel gray and
// decodes to size.
func verifyImage(ex *tfrecord.Example, size stdimage.Point) error {
	data, ok := ex.Image()
	if !ok {
		return fmt.Errorf("missing %s", tfrecord.ImageKey)
	}

	cfg, _, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if cfg.ColorModel != color.GrayModel {
		return errors.New("image is not grayscale")
	}

	img, err := image.LoadGrayFromBytes(data)
	if err != nil {
		return err
	}
	if got := img.Bounds().Size(); got != size {
		return fmt.Errorf("image size %dx%d, want %dx%d", got.X, got.Y, size.X, size.Y)
	}
	return nil
}
