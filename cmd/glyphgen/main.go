// Command glyphgen renders a labelled glyph image dataset from a label file
// and a directory of fonts.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/gogpu/glyphset"
	"github.com/gogpu/glyphset/shard"
	"github.com/gogpu/glyphset/text"
)

func main() {
	var (
		labels      = flag.String("labels", "labels.txt", "label file, one label per line")
		fonts       = flag.String("fonts", "fonts", "directory of .ttf/.otf fonts")
		output      = flag.String("output", "image-data", "output directory")
		distortions = flag.Int("distortions", 1, "distorted variants per rendered image")
		seed        = flag.Uint64("seed", 0, "random seed (0 picks a random seed)")
		quality     = flag.Int("quality", 75, "JPEG quality (1-100)")
		dpi         = flag.Float64("dpi", 72, "font resolution; at 72 DPI one point is one pixel")
		hinting     = flag.String("hinting", "full", "glyph hinting: none, vertical or full")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	setupLogging(*verbose)

	vocab, err := shard.LoadVocabulary(*labels)
	essentials.Must(essentials.AddCtx("load labels", err))

	hint, err := text.ParseHinting(*hinting)
	essentials.Must(err)

	sources, err := text.LoadFonts(*fonts, text.WithDPI(*dpi), text.WithHinting(hint))
	essentials.Must(essentials.AddCtx("load fonts", err))
	defer func() { _ = text.CloseAll(sources) }()

	opts := []glyphset.GeneratorOption{
		glyphset.WithDistortionCount(*distortions),
		glyphset.WithJPEGQuality(*quality),
	}
	if *seed != 0 {
		opts = append(opts, glyphset.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}

	res, err := glyphset.NewGenerator(opts...).Generate(vocab, sources, *output)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	log.Printf("Generated %d images (%d skipped) in %s\n", res.Images, res.Skipped, *output)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	glyphset.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
