package fs

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestWriter = (*Writer)(nil)

// Writer persists manifest files, skipping the write when the target already
// holds identical content so downstream tooling sees stable mtimes.
type Writer struct{}

// NewWriter creates a new manifest writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores data at path. It reports whether the file was rewritten.
func (w *Writer) Write(path string, data []byte) (bool, error) {
	// #nosec G304 -- path is chosen by the caller
	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // manifests are world-readable build outputs
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return true, nil
}
