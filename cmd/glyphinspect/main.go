// Command glyphinspect prints the record count of TFRecord shard files and,
// given a label file, a per-label histogram. With -verify every record's
// image is decoded and checked for size and grayscale.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/gogpu/glyphset"
	"github.com/gogpu/glyphset/shard"
	"github.com/gogpu/glyphset/text"
)

func main() {
	var (
		labels = flag.String("labels", "", "label file for the histogram")
		verify = flag.Bool("verify", false, "decode every image and check its size")
		width  = flag.Int("width", text.DefaultWidth, "expected image width with -verify")
		height = flag.Int("height", text.DefaultHeight, "expected image height with -verify")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] shard.tfrecords...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var vocab *shard.Vocabulary
	if *labels != "" {
		var err error
		vocab, err = shard.LoadVocabulary(*labels)
		essentials.Must(essentials.AddCtx("load labels", err))
	}

	var size image.Point
	if *verify {
		size = image.Pt(*width, *height)
	}

	stats := make([]*glyphset.ShardStats, len(paths))
	errs := make([]error, len(paths))
	essentials.ConcurrentMap(0, len(paths), func(i int) {
		stats[i], errs[i] = glyphset.InspectShard(paths[i], size)
	})

	total := 0
	histogram := map[int64]int{}
	for i, s := range stats {
		if errs[i] != nil {
			log.Fatalf("Failed to inspect: %v", errs[i])
		}
		fmt.Printf("%s\t%d\n", s.Path, s.Records)
		total += s.Records
		for label, n := range s.Labels {
			histogram[label] += n
		}
	}
	fmt.Printf("total\t%d\n", total)

	if vocab == nil {
		return
	}
	for i, label := range vocab.Labels() {
		if n := histogram[int64(i)]; n > 0 {
			fmt.Printf("%d\t%s\t%d\n", i, label, n)
		}
		delete(histogram, int64(i))
	}
	for label, n := range histogram {
		fmt.Printf("%d\t?\t%d\n", label, n)
	}
}
