// Package app implements the application layer for modb.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"github.com/modb-dev/modb/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App exposes the resolver use cases consumed by the CLI.
type App struct {
	loader *loader.Loader
	writer ports.ManifestWriter
	log    ports.Logger
}

// New creates a new App instance.
func New(l *loader.Loader, writer ports.ManifestWriter, log ports.Logger) *App {
	return &App{
		loader: l,
		writer: writer,
		log:    log,
	}
}

// Components bundles the wired objects the CLI entry point needs.
type Components struct {
	App    *App
	Config ports.ConfigLoader
	Logger ports.Logger
}

// Resolve loads the named applications from dir into one store: a single
// name loads that application, several names load independently and merge.
func (a *App) Resolve(dir string, names []string) (*domain.Descriptors, error) {
	switch len(names) {
	case 0:
		return nil, domain.ErrNoApplicationsSpecified
	case 1:
		return a.loader.LoadApplication(dir, names[0])
	default:
		return a.loader.LoadApplications(dir, names)
	}
}

// Order resolves the named applications and returns the module names in
// dependency-respecting order.
func (a *App) Order(dir string, names []string) ([]string, error) {
	descriptors, err := a.Resolve(dir, names)
	if err != nil {
		return nil, err
	}
	if descriptors.Worker() {
		a.log.Info(fmt.Sprintf("application %q is a worker", descriptors.ApplicationName()))
	}
	return descriptors.TopologicalOrder()
}

// Closure resolves the application and returns the dependency closure of the
// given module.
func (a *App) Closure(dir, appName, moduleName string) ([]string, error) {
	descriptors, err := a.loader.LoadApplication(dir, appName)
	if err != nil {
		return nil, err
	}
	return descriptors.DependencyClosure(moduleName)
}

// Resources resolves the application and returns the module's resource
// paths, each prefixed with the module name.
func (a *App) Resources(dir, appName, moduleName string) ([]string, error) {
	descriptors, err := a.loader.LoadApplication(dir, appName)
	if err != nil {
		return nil, err
	}
	return descriptors.ResourceList(moduleName)
}

// Manifest resolves the application and renders its manifest as indented JSON.
func (a *App) Manifest(dir, appName string) ([]byte, error) {
	descriptors, err := a.loader.LoadApplication(dir, appName)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(descriptors.ApplicationManifest(), "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal manifest")
	}
	return data, nil
}

// WriteManifests renders and writes one manifest file per application into
// outDir. Applications are independent of each other, so they are processed
// concurrently; each application's own resolution stays sequential.
func (a *App) WriteManifests(ctx context.Context, dir string, names []string, outDir string) error {
	if len(names) == 0 {
		return domain.ErrNoApplicationsSpecified
	}

	g, _ := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			data, err := a.Manifest(dir, name)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, name+".json")
			written, err := a.writer.Write(path, data)
			if err != nil {
				return err
			}
			if written {
				a.log.Info(fmt.Sprintf("wrote manifest %s", path))
			} else {
				a.log.Info(fmt.Sprintf("manifest %s unchanged, skipped", path))
			}
			return nil
		})
	}
	return g.Wait()
}
