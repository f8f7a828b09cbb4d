// Package domain contains the core domain models for the module descriptor graph.
package domain

import (
	"sync"

	"go.trai.ch/zerr"
)

// Descriptors is the merged, read-only module graph of one application,
// including every module folded in from its extends chain. The loader
// constructs it in one shot; after that it only answers queries.
type Descriptors struct {
	applicationName string
	application     map[string]*ModuleDescriptor
	appOrder        []string
	modules         map[string]*ModuleDescriptor
	extends         string
	worker          bool

	sortOnce sync.Once
	sorted   []string
	sortErr  error
}

// NewDescriptors creates a Descriptors store. application holds the
// application's own module entries in document order; modules is the full
// flattened mapping (own plus transitively extended). The store takes
// ownership of both.
func NewDescriptors(
	name string,
	application []*ModuleDescriptor,
	modules map[string]*ModuleDescriptor,
	extends string,
	worker bool,
) *Descriptors {
	app := make(map[string]*ModuleDescriptor, len(application))
	order := make([]string, 0, len(application))
	for _, entry := range application {
		if _, seen := app[entry.Name]; !seen {
			order = append(order, entry.Name)
		}
		app[entry.Name] = entry
	}
	return &Descriptors{
		applicationName: name,
		application:     app,
		appOrder:        order,
		modules:         modules,
		extends:         extends,
		worker:          worker,
	}
}

// ApplicationName returns the name of the application this store was loaded for.
func (d *Descriptors) ApplicationName() string {
	return d.applicationName
}

// Extends returns the name of the extended parent application, or "" if none.
func (d *Descriptors) Extends() string {
	return d.extends
}

// Worker reports whether the application document declared the worker flag.
func (d *Descriptors) Worker() bool {
	return d.worker
}

// Module returns the descriptor for the given module name from the flattened mapping.
func (d *Descriptors) Module(name string) (*ModuleDescriptor, bool) {
	mod, ok := d.modules[name]
	return mod, ok
}

// Modules returns the flattened module mapping. Callers must treat it as read-only.
func (d *Descriptors) Modules() map[string]*ModuleDescriptor {
	return d.modules
}

// OwnModules returns the application's own module entries in document order.
func (d *Descriptors) OwnModules() []*ModuleDescriptor {
	own := make([]*ModuleDescriptor, 0, len(d.appOrder))
	for _, name := range d.appOrder {
		own = append(own, d.application[name])
	}
	return own
}

// ApplicationManifest returns the application's own module descriptors
// wrapped under a "modules" key, ready for serialization by the caller.
func (d *Descriptors) ApplicationManifest() *Manifest {
	return &Manifest{Modules: d.OwnModules()}
}

// ResourceList returns the module's resource paths, each prefixed with the
// module name. It fails with ErrModuleNotFound for an unknown module.
func (d *Descriptors) ResourceList(name string) ([]string, error) {
	mod, ok := d.modules[name]
	if !ok {
		return nil, zerr.With(ErrModuleNotFound, "module", name)
	}
	resources := make([]string, len(mod.Resources))
	for i, resource := range mod.Resources {
		resources[i] = name + "/" + resource
	}
	return resources, nil
}

// TopologicalOrder returns every module name exactly once, each appearing
// after all of its direct and transitive dependencies. The result is computed
// once and cached for the life of the store; repeated calls return the
// identical slice. When several valid orders exist, which one is returned is
// unspecified beyond the precedence constraint.
func (d *Descriptors) TopologicalOrder() ([]string, error) {
	d.sortOnce.Do(func() {
		d.sorted, d.sortErr = d.sortModules()
	})
	return d.sorted, d.sortErr
}

const (
	colorUnvisited = iota
	colorVisiting
	colorDone
)

// sortModules runs a depth-first topological sort with three-coloring.
// Revisiting a node on the active recursion path is a cycle; a dependency
// name absent from the mapping is an unknown module. The latter should be
// pre-empted by the loader's integrity check and exists as a defense-in-depth
// invariant.
func (d *Descriptors) sortModules() ([]string, error) {
	order := make([]string, 0, len(d.modules))
	state := make(map[string]int, len(d.modules))

	var visit func(referrer, name string) error
	visit = func(referrer, name string) error {
		switch state[name] {
		case colorDone:
			return nil
		case colorVisiting:
			return zerr.With(ErrCycleDetected, "module", name)
		}

		mod, ok := d.modules[name]
		if !ok {
			err := zerr.With(ErrUnknownModule, "module", name)
			return zerr.With(err, "referenced_by", referrer)
		}

		state[name] = colorVisiting
		for _, dep := range mod.Dependencies {
			if err := visit(name, dep); err != nil {
				return err
			}
		}
		state[name] = colorDone
		order = append(order, name)
		return nil
	}

	// Any unvisited node may start the next traversal; map iteration order
	// decides, and any resulting topological order is valid.
	for name := range d.modules {
		if state[name] == colorUnvisited {
			if err := visit("", name); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// DependencyClosure returns the module plus every transitive dependency,
// each exactly once, dependencies before dependents. Each call uses its own
// visited set, so concurrent read-only calls are safe.
func (d *Descriptors) DependencyClosure(name string) ([]string, error) {
	if _, ok := d.modules[name]; !ok {
		return nil, zerr.With(ErrModuleNotFound, "module", name)
	}

	visited := make(map[string]bool, len(d.modules))
	var visit func(referrer, name string) ([]string, error)
	visit = func(referrer, name string) ([]string, error) {
		if visited[name] {
			return nil, nil
		}
		mod, ok := d.modules[name]
		if !ok {
			err := zerr.With(ErrUnknownModule, "module", name)
			return nil, zerr.With(err, "referenced_by", referrer)
		}

		// Marking before the recursion keeps the walk linear and terminates
		// it even on a cyclic mapping.
		visited[name] = true
		var closure []string
		for _, dep := range mod.Dependencies {
			sub, err := visit(name, dep)
			if err != nil {
				return nil, err
			}
			closure = append(closure, sub...)
		}
		return append(closure, name), nil
	}
	return visit("", name)
}
