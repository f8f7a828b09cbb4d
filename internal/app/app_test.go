package app_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/modb-dev/modb/internal/app"
	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports/mocks"
	"github.com/modb-dev/modb/internal/engine/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const appDir = "front_end"

type fixture struct {
	app    *app.App
	reader *mocks.MockDescriptorReader
	writer *mocks.MockManifestWriter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	reader := mocks.NewMockDescriptorReader(ctrl)
	writer := mocks.NewMockManifestWriter(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	return &fixture{
		app:    app.New(loader.New(reader, log), writer, log),
		reader: reader,
		writer: writer,
	}
}

func expectApp(f *fixture, name string, doc *domain.ApplicationDocument) {
	f.reader.EXPECT().ReadApplication(appDir, name).Return(doc, nil)
	for _, entry := range doc.Modules {
		f.reader.EXPECT().ReadModule(appDir, entry.Name).Return(&domain.ModuleDescriptor{}, nil)
	}
}

func TestApp_Order(t *testing.T) {
	f := newFixture(t)
	f.reader.EXPECT().ReadApplication(appDir, "app").Return(&domain.ApplicationDocument{
		Modules: []*domain.ModuleDescriptor{{Name: "feature"}, {Name: "base"}},
	}, nil)
	f.reader.EXPECT().ReadModule(appDir, "feature").Return(
		&domain.ModuleDescriptor{Dependencies: []string{"base"}}, nil)
	f.reader.EXPECT().ReadModule(appDir, "base").Return(&domain.ModuleDescriptor{}, nil)

	order, err := f.app.Order(appDir, []string{"app"})
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "feature"}, order)
}

func TestApp_Order_NoApplications(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Order(appDir, nil)
	require.ErrorIs(t, err, domain.ErrNoApplicationsSpecified)
}

func TestApp_Manifest(t *testing.T) {
	f := newFixture(t)
	expectApp(f, "app", &domain.ApplicationDocument{
		Modules: []*domain.ModuleDescriptor{{Name: "core"}},
	})

	data, err := f.app.Manifest(appDir, "app")
	require.NoError(t, err)

	var manifest map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &manifest))
	require.Len(t, manifest["modules"], 1)
	assert.Equal(t, "core", manifest["modules"][0]["name"])
}

func TestApp_WriteManifests(t *testing.T) {
	f := newFixture(t)
	expectApp(f, "app1", &domain.ApplicationDocument{
		Modules: []*domain.ModuleDescriptor{{Name: "a"}},
	})
	expectApp(f, "app2", &domain.ApplicationDocument{
		Modules: []*domain.ModuleDescriptor{{Name: "b"}},
	})

	outDir := t.TempDir()
	f.writer.EXPECT().Write(filepath.Join(outDir, "app1.json"), gomock.Any()).Return(true, nil)
	f.writer.EXPECT().Write(filepath.Join(outDir, "app2.json"), gomock.Any()).Return(false, nil)

	err := f.app.WriteManifests(context.Background(), appDir, []string{"app1", "app2"}, outDir)
	require.NoError(t, err)
}

func TestApp_WriteManifests_PropagatesLoadFailure(t *testing.T) {
	f := newFixture(t)
	f.reader.EXPECT().ReadApplication(appDir, "broken").Return(
		nil, domain.ErrDescriptorNotFound)

	err := f.app.WriteManifests(context.Background(), appDir, []string{"broken"}, t.TempDir())
	require.ErrorIs(t, err, domain.ErrDescriptorNotFound)
}
