// Package config provides the workspace configuration loader for modb.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workspace config file looked up in the working directory.
const DefaultFilename = "modb.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the configuration file named filename from the given working
// directory; an empty filename falls back to DefaultFilename. A missing file
// is not an error: the CLI flags can supply everything the file would, so an
// empty workspace is returned instead.
func (l *FileConfigLoader) Load(cwd, filename string) (*domain.Workspace, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, filename)
	}

	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return &domain.Workspace{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var modbfile Modbfile
	if err := yaml.Unmarshal(data, &modbfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &domain.Workspace{
		AppDir:       resolveAppDir(filepath.Dir(path), modbfile.AppDir),
		Applications: modbfile.Applications,
	}, nil
}

// resolveAppDir anchors a relative appDir at the config file's directory.
func resolveAppDir(base, appDir string) string {
	if appDir == "" {
		return ""
	}
	if filepath.IsAbs(appDir) {
		return filepath.Clean(appDir)
	}
	return filepath.Clean(filepath.Join(base, appDir))
}
