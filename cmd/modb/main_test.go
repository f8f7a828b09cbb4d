package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/modb-dev/modb/internal/app"
	"github.com/modb-dev/modb/internal/core/ports/mocks"
	"github.com/modb-dev/modb/internal/engine/loader"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer

	exitCode := run(context.Background(), []string{"version"}, &stderr,
		func(ctx context.Context) (*app.Components, error) {
			return nil, zerr.New("wiring failed")
		})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockDescriptorReader(ctrl)
	writer := mocks.NewMockManifestWriter(ctrl)
	configLoader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	components := &app.Components{
		App:    app.New(loader.New(reader, log), writer, log),
		Config: configLoader,
		Logger: log,
	}

	var stderr bytes.Buffer
	exitCode := run(context.Background(), []string{"version"}, &stderr,
		func(ctx context.Context) (*app.Components, error) {
			return components, nil
		})

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}
