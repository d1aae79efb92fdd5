package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // registered for DecodeGray
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is the encoder quality used when none is configured.
const DefaultJPEGQuality = 75

// EncodeJPEG encodes a grayscale image as JPEG with the given quality (1-100).
func EncodeJPEG(w io.Writer, img *image.Gray, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// SaveJPEG saves a grayscale image as a JPEG file.
func SaveJPEG(path string, img *image.Gray, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodeJPEG(f, img, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// DecodeGray decodes a PNG or JPEG image and converts it to grayscale.
func DecodeGray(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return ToGray(img), nil
}

// LoadGrayFromBytes decodes encoded image data held in memory, such as the
// image/encoded feature of a shard record.
func LoadGrayFromBytes(data []byte) (*image.Gray, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeGray(bytes.NewReader(data))
}

// ToGray returns img as *image.Gray with its origin at (0, 0).
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	if g, ok := img.(*image.Gray); ok && bounds.Min == (image.Point{}) {
		return g
	}
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Rect, img, bounds.Min, draw.Src)
	return gray
}
