package tfrecord

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxRecordSize bounds a single record so a corrupt header cannot force a
// huge allocation.
const MaxRecordSize = 1 << 30

// Reader iterates over the records of a stream.
type Reader struct {
	r      *bufio.Reader
	header [12]byte
	footer [4]byte
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record payload. It returns io.EOF after the last
// complete record and io.ErrUnexpectedEOF for a truncated one.
func (r *Reader) Next() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.header[:]); err != nil {
		return nil, err
	}

	length := binary.LittleEndian.Uint64(r.header[:8])
	if binary.LittleEndian.Uint32(r.header[8:]) != maskedCRC(r.header[:8]) {
		return nil, fmt.Errorf("%w: length header", ErrCorrupt)
	}
	if length > MaxRecordSize {
		return nil, ErrRecordTooLarge
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return nil, noEOF(err)
	}
	if _, err := io.ReadFull(r.r, r.footer[:]); err != nil {
		return nil, noEOF(err)
	}
	if binary.LittleEndian.Uint32(r.footer[:]) != maskedCRC(data) {
		return nil, fmt.Errorf("%w: payload", ErrCorrupt)
	}
	return data, nil
}

// NextExample reads and decodes the next record.
func (r *Reader) NextExample() (*Example, error) {
	data, err := r.Next()
	if err != nil {
		return nil, err
	}
	return UnmarshalExample(data)
}

// noEOF turns a clean EOF inside a record into io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ForEach calls fn for every record in the file at path.
func ForEach(path string, fn func(data []byte) error) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("tfrecord: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := NewReader(f)
	for {
		data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tfrecord: %s: %w", filepath.Base(path), err)
		}
		if err := fn(data); err != nil {
			return err
		}
	}
}

// CountRecords returns the number of records in the file at path,
// verifying every checksum.
func CountRecords(path string) (int, error) {
	n := 0
	err := ForEach(path, func([]byte) error {
		n++
		return nil
	})
	return n, err
}

// ReadExamples decodes every record in the file at path.
func ReadExamples(path string) ([]*Example, error) {
	var out []*Example
	err := ForEach(path, func(data []byte) error {
		ex, err := UnmarshalExample(data)
		if err != nil {
			return err
		}
		out = append(out, ex)
		return nil
	})
	return out, err
}
