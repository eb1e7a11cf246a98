package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for file-based configuration.
// The file is read once at construction time and its contents are cached.
type Fetcher struct {
	path    string
	data    []byte
	present bool
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher over a file
// that must exist. The constructor fails if the file cannot be read or if
// the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return read(filepath.Clean(fpath), false)
	}
}

// NewOptionalFetcher is like NewFetcher, but a missing file yields a Fetcher
// with no data instead of an error. It suits local override layers.
func NewOptionalFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return read(filepath.Clean(fpath), true)
	}
}

func read(cleanPath string, optional bool) (*Fetcher, error) {
	stat, err := os.Stat(cleanPath)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("optional configuration file not found", slog.String("path", cleanPath))

			return &Fetcher{path: cleanPath, data: nil, present: false}, nil
		}

		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{path: cleanPath, data: data, present: true}, nil
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.path
}

// Present reports whether the file existed at construction time.
func (f *Fetcher) Present() bool {
	return f.present
}

// Fetch returns a copy of the cached contents, so callers cannot alter the cache.
func (f *Fetcher) Fetch() ([]byte, error) {
	return slices.Clone(f.data), nil
}
