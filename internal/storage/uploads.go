// Package storage stages files uploaded through the HTTP API on local disk.
//
// Staging is best-effort: files are keyed by their base name only, and two
// uploads with the same name race, the later one overwriting the earlier.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned when an upload name has no usable base name.
var ErrInvalidName = errors.New("invalid upload name")

// Uploads writes uploaded files into a single directory.
type Uploads struct {
	dir    string
	logger *slog.Logger
}

// NewUploads creates the upload directory if needed.
func NewUploads(dir string, logger *slog.Logger) (*Uploads, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploads{dir: dir, logger: logger}, nil
}

// Dir returns the staging directory.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save copies r to <dir>/<base name of name> and returns the stored base name.
// Any directory components in name are discarded.
func (u *Uploads) Save(name string, r io.Reader) (string, int64, error) {
	base, err := BaseName(name)
	if err != nil {
		return "", 0, err
	}

	path := filepath.Join(u.dir, base)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", n, fmt.Errorf("failed to write %s: %w", path, err)
	}

	u.logger.Info("upload stored", "name", base, "bytes", n)
	return base, n, nil
}

// BaseName strips directory components from a client-supplied file name.
// Both slash styles are treated as separators.
func BaseName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(filepath.FromSlash(name))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base, nil
}
