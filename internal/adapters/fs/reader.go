// Package fs implements filesystem-backed descriptor reading and manifest writing.
package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EntrypointsDir is the directory under the application dir that holds
	// one subdirectory per application descriptor.
	EntrypointsDir = "entrypoints"

	// ModuleDescriptorFile is the descriptor file name inside each module directory.
	ModuleDescriptorFile = "module.json"
)

var _ ports.DescriptorReader = (*Reader)(nil)

// Reader reads JSON descriptor documents from an application directory laid
// out as entrypoints/<app>/<app>.json and <module>/module.json.
type Reader struct{}

// NewReader creates a new filesystem descriptor reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadApplication reads and parses the application descriptor for name.
func (r *Reader) ReadApplication(dir, name string) (*domain.ApplicationDocument, error) {
	path := filepath.Join(dir, EntrypointsDir, name, name+".json")

	var doc domain.ApplicationDocument
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadModule reads and parses the module descriptor for name.
func (r *Reader) ReadModule(dir, name string) (*domain.ModuleDescriptor, error) {
	path := filepath.Join(dir, name, ModuleDescriptorFile)

	var module domain.ModuleDescriptor
	if err := readJSON(path, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func readJSON(path string, target any) error {
	// #nosec G304 -- path is built from the configured application directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return zerr.With(domain.ErrDescriptorNotFound, "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to read descriptor"), "path", path)
	}

	if err := json.Unmarshal(data, target); err != nil {
		parseErr := zerr.With(domain.ErrDescriptorParseFailed, "path", path)
		return zerr.With(parseErr, "cause", err.Error())
	}
	return nil
}
