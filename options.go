package glyphset

import (
	"math/rand/v2"

	"github.com/gogpu/glyphset/distort"
	"github.com/gogpu/glyphset/internal/image"
	"github.com/gogpu/glyphset/shard"
	"github.com/gogpu/glyphset/text"
)

// Default output layout.
const (
	DefaultImageDir     = "hangul-images"
	DefaultManifestName = "labels-map.csv"
	DefaultVocabName    = "labels.txt"
	DefaultRecordExt    = ".tfrecords"
)

// GeneratorOption configures a Generator.
//
// Example:
//
//	g := glyphset.NewGenerator(
//	    glyphset.WithDistortionCount(3),
//	    glyphset.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
type GeneratorOption func(*generatorConfig)

// generatorConfig holds configuration for Generator.
type generatorConfig struct {
	width, height int
	fontSize      float64
	distortions   int
	params        distort.Params
	rng           *rand.Rand
	quality       int
	imageDir      string
	skipMissing   bool
}

// defaultGeneratorConfig returns the default generator configuration.
func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		width:       text.DefaultWidth,
		height:      text.DefaultHeight,
		fontSize:    text.DefaultFontSize,
		distortions: 1,
		params:      distort.DefaultParams(),
		quality:     image.DefaultJPEGQuality,
		imageDir:    DefaultImageDir,
		skipMissing: true,
	}
}

// WithImageSize sets the canvas size in pixels. Non-positive values are ignored.
func WithImageSize(width, height int) GeneratorOption {
	return func(c *generatorConfig) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithFontSize sets the glyph size in points (pixels at 72 DPI).
func WithFontSize(size float64) GeneratorOption {
	return func(c *generatorConfig) {
		if size > 0 {
			c.fontSize = size
		}
	}
}

// WithDistortionCount sets how many distorted variants follow each
// undistorted image. Zero disables distortion.
func WithDistortionCount(n int) GeneratorOption {
	return func(c *generatorConfig) {
		if n >= 0 {
			c.distortions = n
		}
	}
}

// WithDistortionParams sets the alpha and sigma ranges.
func WithDistortionParams(p distort.Params) GeneratorOption {
	return func(c *generatorConfig) {
		c.params = p
	}
}

// WithRand sets the random source for distortion parameters and fields.
// The default is a freshly seeded source per Generate call.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rng
	}
}

// WithJPEGQuality sets the JPEG quality (1-100).
func WithJPEGQuality(q int) GeneratorOption {
	return func(c *generatorConfig) {
		c.quality = q
	}
}

// WithImageDir sets the image subdirectory name inside the output directory.
func WithImageDir(name string) GeneratorOption {
	return func(c *generatorConfig) {
		if name != "" {
			c.imageDir = name
		}
	}
}

// WithSkipMissingGlyphs controls whether a font that has no glyph for a
// label is skipped (the default) or rendered anyway.
func WithSkipMissingGlyphs(skip bool) GeneratorOption {
	return func(c *generatorConfig) {
		c.skipMissing = skip
	}
}

// ConverterOption configures a Converter.
type ConverterOption func(*converterConfig)

// converterConfig holds configuration for Converter.
type converterConfig struct {
	trainShards  int
	testShards   int
	testFraction float64
	rng          *rand.Rand
	imageRoot    string
}

// defaultConverterConfig returns the default converter configuration.
func defaultConverterConfig() converterConfig {
	return converterConfig{
		trainShards:  1,
		testShards:   1,
		testFraction: shard.DefaultTestFraction,
	}
}

// WithShardCounts sets the number of train and test shard files.
// Counts below 1 make Convert fail with ErrInvalidShardCount.
func WithShardCounts(train, test int) ConverterOption {
	return func(c *converterConfig) {
		c.trainShards, c.testShards = train, test
	}
}

// WithTestFraction sets the share of entries held out for testing.
func WithTestFraction(f float64) ConverterOption {
	return func(c *converterConfig) {
		c.testFraction = f
	}
}

// WithShuffleRand sets the random source used to shuffle entries.
// The default is a freshly seeded source per Convert call.
func WithShuffleRand(rng *rand.Rand) ConverterOption {
	return func(c *converterConfig) {
		c.rng = rng
	}
}

// WithImageRoot resolves relative manifest paths against dir instead of
// the working directory.
func WithImageRoot(dir string) ConverterOption {
	return func(c *converterConfig) {
		c.imageRoot = dir
	}
}

// newRand returns rng, or a freshly seeded source when rng is nil.
func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
