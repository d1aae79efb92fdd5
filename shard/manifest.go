package shard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Entry pairs a saved image with its label.
type Entry struct {
	Path  string
	Label string
}

// Manifest lists generated images in generation order.
type Manifest []Entry

// Add appends an entry.
func (m *Manifest) Add(path, label string) {
	*m = append(*m, Entry{Path: path, Label: label})
}

// Len returns the number of entries.
func (m Manifest) Len() int { return len(m) }

// Labeled pairs an image path with its class index.
type Labeled struct {
	Path  string
	Class int
}

// Resolve maps every label through vocab. The first unknown label aborts
// with an error wrapping ErrUnknownLabel and naming the manifest line.
func (m Manifest) Resolve(vocab *Vocabulary) ([]Labeled, error) {
	out := make([]Labeled, len(m))
	for i, e := range m {
		class, err := vocab.Index(e.Label)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		out[i] = Labeled{Path: e.Path, Class: class}
	}
	return out, nil
}

// WriteTo writes the manifest as "<path>,<label>" lines. Fields are quoted
// only when they contain a comma, quote or newline.
func (m Manifest) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	csvw := csv.NewWriter(cw)
	for _, e := range m {
		if err := csvw.Write([]string{e.Path, e.Label}); err != nil {
			return cw.n, err
		}
	}
	csvw.Flush()
	return cw.n, csvw.Error()
}

// WriteFile writes the manifest to path.
func (m Manifest) WriteFile(path string) error {
	return writeFile(path, m)
}

// ReadManifest parses "<path>,<label>" lines. Labels are NFC-normalized.
func ReadManifest(r io.Reader) (Manifest, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	var m Manifest
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		if err != nil {
			return nil, fmt.Errorf("shard: read manifest: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w: %d fields", ErrMalformedManifest, len(rec))}
		}
		m.Add(rec[0], NormalizeLabel(rec[1]))
	}
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("shard: open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := ReadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("shard: %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
