// Command glyphshard packs a generated manifest into train and test
// TFRecord shards.
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
)

func main() {
	var (
		manifest     = flag.String("manifest", "image-data/labels-map.csv", "image/label manifest")
		labels       = flag.String("labels", "labels.txt", "label file, one label per line")
		output       = flag.String("output", "tfrecords-output", "output directory")
		trainShards  = flag.Int("train-shards", 3, "number of train shard files")
		testShards   = flag.Int("test-shards", 1, "number of test shard files")
		testFraction = flag.Float64("test-fraction", shard.DefaultTestFraction, "share of entries held out for testing")
		imageRoot    = flag.String("image-root", "", "directory relative image paths are resolved against")
		seed         = flag.Uint64("seed", 0, "shuffle seed (0 picks a random seed)")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glyphset.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	vocab, err := shard.LoadVocabulary(*labels)
	essentials.Must(essentials.AddCtx("load labels", err))

	entries, err := shard.LoadManifest(*manifest)
	essentials.Must(essentials.AddCtx("load manifest", err))

	opts := []glyphset.ConverterOption{
		glyphset.WithShardCounts(*trainShards, *testShards),
		glyphset.WithTestFraction(*testFraction),
		glyphset.WithImageRoot(*imageRoot),
	}
	if *seed != 0 {
		opts = append(opts, glyphset.WithShuffleRand(rand.New(rand.NewPCG(*seed, *seed))))
	}

	report, err := glyphset.NewConverter(opts...).Convert(entries, vocab, *output)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	for _, s := range report.Shards {
		log.Printf("%s: %d records\n", s.Path, s.Records)
	}
	log.Printf("Wrote %d records to %d files\n", report.Records, len(report.Shards))
}
