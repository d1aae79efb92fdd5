package glyphset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/glyphset/shard"
	"github.com/gogpu/glyphset/tfrecord"
)

// Split names.
const (
	SplitTrain = "train"
	SplitTest  = "test"
)

// Converter packs a manifest into train and test TFRecord shards.
type Converter struct {
	config converterConfig
}

// ShardReport describes one written shard file.
type ShardReport struct {
	Path    string
	Split   string
	Index   int // 1-based within the split
	Records int
}

// Report summarizes one Convert run.
type Report struct {
	Shards  []ShardReport
	Records int
}

// Files returns the paths of all written shards in write order.
func (r *Report) Files() []string {
	paths := make([]string, len(r.Shards))
	for i, s := range r.Shards {
		paths[i] = s.Path
	}
	return paths
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...ConverterOption) *Converter {
	cfg := defaultConverterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{config: cfg}
}

// Convert resolves every manifest label through vocab, shuffles the
// entries, holds out the test split and writes train-<i>.tfrecords then
// test-<i>.tfrecords into outDir.
//
// Every configured shard file is created even when it receives no
// records. An unknown label or unreadable image aborts the run.
func (c *Converter) Convert(manifest shard.Manifest, vocab *shard.Vocabulary, outDir string) (*Report, error) {
	if c.config.trainShards < 1 || c.config.testShards < 1 {
		return nil, fmt.Errorf("%w: train=%d test=%d",
			ErrInvalidShardCount, c.config.trainShards, c.config.testShards)
	}

	items, err := manifest.Resolve(vocab)
	if err != nil {
		return nil, fmt.Errorf("glyphset: resolve labels: %w", err)
	}

	rng := newRand(c.config.rng)
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("glyphset: create output dir: %w", err)
	}

	train, test := shard.Split(len(items), c.config.testFraction)
	segments := []struct {
		name   string
		span   shard.Range
		shards int
	}{
		{SplitTrain, train, c.config.trainShards},
		{SplitTest, test, c.config.testShards},
	}

	report := &Report{}
	log := Logger()

	for _, seg := range segments {
		for i, r := range shard.Partition(seg.span.Len(), seg.shards) {
			r = r.Offset(seg.span.Start)
			path := filepath.Join(outDir, seg.name+"-"+strconv.Itoa(i+1)+DefaultRecordExt)

			if err := c.writeShard(path, items[r.Start:r.End]); err != nil {
				return nil, err
			}

			report.Shards = append(report.Shards, ShardReport{
				Path:    path,
				Split:   seg.name,
				Index:   i + 1,
				Records: r.Len(),
			})
			report.Records += r.Len()
			log.Debug("glyphset: wrote shard", "path", path, "records", r.Len())
		}
	}

	log.Info("glyphset: wrote shards",
		"records", report.Records,
		"train", train.Len(),
		"test", test.Len(),
		"files", len(report.Shards))
	return report, nil
}

// writeShard serializes items into one TFRecord file.
func (c *Converter) writeShard(path string, items []shard.Labeled) error {
	w, err := tfrecord.Create(path)
	if err != nil {
		return fmt.Errorf("glyphset: %w", err)
	}

	for _, item := range items {
		data, err := os.ReadFile(c.imagePath(item.Path))
		if err != nil {
			_ = w.Close()
			return fmt.Errorf("glyphset: read image %q: %w", item.Path, err)
		}
		if err := w.WriteExample(tfrecord.NewImageExample(data, int64(item.Class))); err != nil {
			_ = w.Close()
			return fmt.Errorf("glyphset: write %s: %w", path, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("glyphset: close %s: %w", path, err)
	}
	return nil
}

// imagePath resolves a manifest path against the configured image root.
func (c *Converter) imagePath(p string) string {
	if c.config.imageRoot == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.config.imageRoot, p)
}

// ConvertFiles loads the manifest and vocabulary files and runs Convert.
func ConvertFiles(manifestPath, vocabPath, outDir string, opts ...ConverterOption) (*Report, error) {
	vocab, err := shard.LoadVocabulary(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("glyphset: %w", err)
	}
	manifest, err := shard.LoadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("glyphset: %w", err)
	}
	return NewConverter(opts...).Convert(manifest, vocab, outDir)
}
