package tfrecord

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer appends records to an underlying stream.
// Writer is not safe for concurrent use.
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
	count  int
	closed bool
	header [12]byte
	footer [4]byte
}

// NewWriter returns a Writer on w. Close flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Create creates (or truncates) the file at path and returns a Writer on it.
// Close closes the file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tfrecord: create file: %w", err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// Write appends one record.
func (w *Writer) Write(data []byte) error {
	if w.closed {
		return ErrClosed
	}

	binary.LittleEndian.PutUint64(w.header[:8], uint64(len(data)))
	binary.LittleEndian.PutUint32(w.header[8:], maskedCRC(w.header[:8]))
	binary.LittleEndian.PutUint32(w.footer[:], maskedCRC(data))

	if _, err := w.w.Write(w.header[:]); err != nil {
		return fmt.Errorf("tfrecord: write header: %w", err)
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("tfrecord: write data: %w", err)
	}
	if _, err := w.w.Write(w.footer[:]); err != nil {
		return fmt.Errorf("tfrecord: write footer: %w", err)
	}

	w.count++
	return nil
}

// WriteExample encodes ex and appends it as one record.
func (w *Writer) WriteExample(ex *Example) error {
	return w.Write(ex.Marshal())
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Flush writes buffered data to the underlying stream.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("tfrecord: flush: %w", err)
	}
	return nil
}

// Close flushes buffered records and closes the file opened by Create.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("tfrecord: close: %w", cerr)
		}
	}
	return err
}
