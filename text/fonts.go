package text

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fontExtensions lists the file extensions FindFonts accepts.
var fontExtensions = []string{".ttf", ".otf"}

// FindFonts returns the font files directly inside dir, sorted by name.
// Subdirectories are not scanned.
func FindFonts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("text: read font directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isFontFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFonts, dir)
	}
	return paths, nil
}

// LoadFonts loads every font FindFonts returns for dir.
// If any font fails to load, the already loaded ones are closed.
func LoadFonts(dir string, opts ...SourceOption) ([]*FontSource, error) {
	paths, err := FindFonts(dir)
	if err != nil {
		return nil, err
	}

	sources := make([]*FontSource, 0, len(paths))
	for _, p := range paths {
		s, err := NewFontSourceFromFile(p, opts...)
		if err != nil {
			return nil, errors.Join(err, CloseAll(sources))
		}
		sources = append(sources, s)
	}
	return sources, nil
}

// CloseAll closes every source and joins the errors.
func CloseAll(sources []*FontSource) error {
	var errs []error
	for _, s := range sources {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isFontFile(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range fontExtensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
