package glyphset

import (
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/glyphset/internal/image"
	"github.com/gogpu/glyphset/shard"
	"github.com/gogpu/glyphset/text"
)

// Generator renders labelled glyph images and records them in a manifest.
//
// A Generator holds only configuration and may be reused; Generate itself
// is single-threaded.
type Generator struct {
	config   generatorConfig
	renderer *text.Renderer
}

// Result summarizes one Generate run.
type Result struct {
	// Manifest lists every saved image in generation order.
	Manifest shard.Manifest

	// Images is the number of JPEG files written.
	Images int

	// Skipped counts (label, font) pairs left out because the font has no
	// glyph for the label.
	Skipped int

	// ManifestPath and VocabPath locate the finalized output files.
	ManifestPath string
	VocabPath    string
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{
		config: cfg,
		renderer: &text.Renderer{
			Width:  cfg.width,
			Height: cfg.height,
			Size:   cfg.fontSize,
		},
	}
}

// Generate renders every label of vocab in every font into
// <outDir>/<image dir>/image_<n>.jpeg, followed by the configured number of
// distorted variants of that rendering. n is a 1-based counter over all
// images in generation order.
//
// After all images are saved, the manifest and the vocabulary are written
// to outDir. Any I/O or rendering error aborts the run; images already
// written stay on disk.
func (g *Generator) Generate(vocab *shard.Vocabulary, fonts []*text.FontSource, outDir string) (*Result, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}
	if err := g.config.params.Validate(); err != nil {
		return nil, fmt.Errorf("glyphset: distortion params: %w", err)
	}

	imageDir := filepath.Join(outDir, g.config.imageDir)
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("glyphset: create image dir: %w", err)
	}

	rng := newRand(g.config.rng)
	res := &Result{}
	log := Logger()

	for _, label := range vocab.Labels() {
		for _, src := range fonts {
			if g.config.skipMissing && !src.Covers(label) {
				res.Skipped++
				log.Warn("glyphset: font has no glyph for label",
					"font", src.String(),
					"label", label,
					"missing", string(src.Missing(label)),
					"script", text.ScriptOf(label).String())
				continue
			}

			img, err := g.renderer.Render(src, label)
			if err != nil {
				return nil, fmt.Errorf("glyphset: render %q with %s: %w", label, src, err)
			}
			if err := g.save(res, imageDir, label, img); err != nil {
				return nil, err
			}

			for range g.config.distortions {
				warped := g.config.params.Draw(rng).Apply(img)
				if err := g.save(res, imageDir, label, warped); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := g.finalize(res, vocab, outDir); err != nil {
		return nil, err
	}

	log.Info("glyphset: generated images",
		"images", res.Images,
		"labels", vocab.Len(),
		"fonts", len(fonts),
		"skipped", res.Skipped)
	return res, nil
}

// save writes img as the next numbered JPEG and records it in the manifest.
func (g *Generator) save(res *Result, dir, label string, img *stdimage.Gray) error {
	name := "image_" + strconv.Itoa(res.Images+1) + ".jpeg"
	path := filepath.Join(dir, name)
	if err := image.SaveJPEG(path, img, g.config.quality); err != nil {
		return fmt.Errorf("glyphset: save %s: %w", path, err)
	}
	res.Images++
	res.Manifest.Add(path, label)
	return nil
}

// finalize writes the manifest and the vocabulary in one step.
func (g *Generator) finalize(res *Result, vocab *shard.Vocabulary, outDir string) error {
	res.ManifestPath = filepath.Join(outDir, DefaultManifestName)
	res.VocabPath = filepath.Join(outDir, DefaultVocabName)

	if err := res.Manifest.WriteFile(res.ManifestPath); err != nil {
		return fmt.Errorf("glyphset: write manifest: %w", err)
	}
	if err := vocab.WriteFile(res.VocabPath); err != nil {
		return fmt.Errorf("glyphset: write vocabulary: %w", err)
	}
	return nil
}
