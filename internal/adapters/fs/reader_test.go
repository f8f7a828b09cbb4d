package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modb-dev/modb/internal/adapters/fs"
	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestReader_ReadApplication(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrypoints/shell/shell.json", `{
		"modules": [{"name": "core"}, {"name": "ui", "type": "autostart"}],
		"extends": "base_app",
		"worker": true
	}`)

	reader := fs.NewReader()
	doc, err := reader.ReadApplication(dir, "shell")
	require.NoError(t, err)

	assert.Equal(t, "base_app", doc.Extends)
	assert.True(t, doc.Worker)
	require.Len(t, doc.Modules, 2)
	assert.Equal(t, "core", doc.Modules[0].Name)
	assert.Equal(t, "autostart", doc.Modules[1].Extra["type"])
}

func TestReader_ReadModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "elements/module.json", `{
		"dependencies": ["core"],
		"resources": ["panel.js"]
	}`)

	reader := fs.NewReader()
	module, err := reader.ReadModule(dir, "elements")
	require.NoError(t, err)

	assert.Equal(t, []string{"core"}, module.Dependencies)
	assert.Equal(t, []string{"panel.js"}, module.Resources)
}

func TestReader_NotFound(t *testing.T) {
	dir := t.TempDir()
	reader := fs.NewReader()

	_, err := reader.ReadApplication(dir, "missing")
	require.ErrorIs(t, err, domain.ErrDescriptorNotFound)

	_, err = reader.ReadModule(dir, "missing")
	require.ErrorIs(t, err, domain.ErrDescriptorNotFound)
}

func TestReader_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken/module.json", `{not json`)

	reader := fs.NewReader()
	_, err := reader.ReadModule(dir, "broken")
	require.ErrorIs(t, err, domain.ErrDescriptorParseFailed)
}
