package shard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary maps labels to class indices. The index of a label is its
// 0-based line position in the vocabulary file.
//
// A Vocabulary is immutable after loading and safe for concurrent use.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary builds a vocabulary from labels in order.
// Labels are NFC-normalized; empty and duplicate labels are rejected.
func NewVocabulary(labels []string) (*Vocabulary, error) {
	v := &Vocabulary{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if err := v.add(l); err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
	}
	return v, nil
}

func (v *Vocabulary) add(label string) error {
	label = NormalizeLabel(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if _, dup := v.index[label]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	v.index[label] = len(v.labels)
	v.labels = append(v.labels, label)
	return nil
}

// ReadVocabulary reads one label per line. A UTF-8 byte order mark is
// skipped and CRLF line endings are accepted.
func ReadVocabulary(r io.Reader) (*Vocabulary, error) {
	dec := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	sc := bufio.NewScanner(dec)

	v := &Vocabulary{index: map[string]int{}}
	line := 0
	for sc.Scan() {
		line++
		if err := v.add(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shard: read vocabulary: %w", err)
	}
	return v, nil
}

// LoadVocabulary reads a vocabulary file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("shard: open vocabulary: %w", err)
	}
	defer func() { _ = f.Close() }()

	v, err := ReadVocabulary(f)
	if err != nil {
		return nil, fmt.Errorf("shard: %s: %w", filepath.Base(path), err)
	}
	return v, nil
}

// Index returns the class index of label.
func (v *Vocabulary) Index(label string) (int, error) {
	if i, ok := v.index[label]; ok {
		return i, nil
	}
	if i, ok := v.index[NormalizeLabel(label)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

// Label returns the label with class index i.
func (v *Vocabulary) Label(i int) (string, bool) {
	if i < 0 || i >= len(v.labels) {
		return "", false
	}
	return v.labels[i], true
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int { return len(v.labels) }

// Labels returns a copy of the labels in index order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}

// WriteTo writes the vocabulary one label per line.
func (v *Vocabulary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range v.labels {
		m, err := bw.WriteString(l + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// WriteFile writes the vocabulary to path.
func (v *Vocabulary) WriteFile(path string) error {
	return writeFile(path, v)
}

// NormalizeLabel returns the NFC form of label. Precomposed and
// conjoining-jamo spellings of the same Hangul syllable map to one label.
func NormalizeLabel(label string) string {
	return norm.NFC.String(label)
}

// writeFile creates path and streams wt into it.
func writeFile(path string, wt io.WriterTo) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("shard: create file: %w", err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("shard: write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
