// Package loader constructs validated descriptor stores from raw descriptor
// documents obtained through a ports.DescriptorReader.
package loader

import (
	"fmt"

	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"go.trai.ch/zerr"
)

// MergedApplicationName is the synthetic umbrella name given to the combined
// store produced by LoadApplications.
const MergedApplicationName = "all"

// Loader loads application descriptors into domain.Descriptors stores.
// Loading is synchronous and one-shot: any validation failure aborts the
// whole load and no partial store is returned.
type Loader struct {
	reader ports.DescriptorReader
	log    ports.Logger
}

// New creates a new Loader reading descriptors through the given reader.
func New(reader ports.DescriptorReader, log ports.Logger) *Loader {
	return &Loader{
		reader: reader,
		log:    log,
	}
}

// LoadApplication loads the named application, including its full extends
// chain, from the application directory dir.
func (l *Loader) LoadApplication(dir, name string) (*domain.Descriptors, error) {
	all := make(map[string]*domain.ModuleDescriptor)
	return l.loadApplication(dir, name, all)
}

// LoadApplications loads several independent applications and merges their
// module sets into one combined store named MergedApplicationName. A module
// name appearing in more than one of the loaded applications is a
// duplicate-module error, the same rule applied within a single extends chain.
func (l *Loader) LoadApplications(dir string, names []string) (*domain.Descriptors, error) {
	allModules := make(map[string]*domain.ModuleDescriptor)
	var allOwn []*domain.ModuleDescriptor

	for _, name := range names {
		descriptors, err := l.LoadApplication(dir, name)
		if err != nil {
			return nil, err
		}

		for moduleName, module := range descriptors.Modules() {
			if _, dup := allModules[moduleName]; dup {
				err := zerr.With(domain.ErrDuplicateModule, "module", moduleName)
				return nil, zerr.With(err, "application", name)
			}
			allModules[moduleName] = module
		}
		allOwn = append(allOwn, descriptors.OwnModules()...)
	}

	return domain.NewDescriptors(MergedApplicationName, allOwn, allModules, "", false), nil
}

// loadApplication loads one application into the shared accumulator. The
// extended parent is loaded fully before this application's own modules are
// read, so duplicate detection always runs against the complete parent set.
func (l *Loader) loadApplication(
	dir, name string,
	all map[string]*domain.ModuleDescriptor,
) (*domain.Descriptors, error) {
	doc, err := l.reader.ReadApplication(dir, name)
	if err != nil {
		return nil, zerr.With(err, "application", name)
	}

	if doc.Extends != "" {
		if _, err := l.loadApplication(dir, doc.Extends, all); err != nil {
			return nil, err
		}
	}

	own := make([]*domain.ModuleDescriptor, 0, len(doc.Modules))
	added := make([]*domain.ModuleDescriptor, 0, len(doc.Modules))
	for _, entry := range doc.Modules {
		if _, dup := all[entry.Name]; dup {
			err := zerr.With(domain.ErrDuplicateModule, "module", entry.Name)
			return nil, zerr.With(err, "application", name)
		}

		module, err := l.reader.ReadModule(dir, entry.Name)
		if err != nil {
			err = zerr.With(err, "module", entry.Name)
			return nil, zerr.With(err, "application", name)
		}
		// The loader owns the name field: the document may not declare it,
		// and a declared value is not trusted.
		module.Name = entry.Name

		all[entry.Name] = module
		added = append(added, module)
		own = append(own, entry)
	}

	// Only the modules added at this level need checking; the parent chain
	// validated its own before returning.
	for _, module := range added {
		for _, dep := range module.Dependencies {
			if _, ok := all[dep]; !ok {
				err := zerr.With(domain.ErrMissingDependency, "dependency", dep)
				err = zerr.With(err, "referenced_by", module.Name)
				return nil, zerr.With(err, "application", name)
			}
		}
	}

	l.log.Info(fmt.Sprintf("loaded application %q (%d modules, %d total)", name, len(own), len(all)))

	// Each store gets its own snapshot of the accumulator: the parent's copy
	// was taken before this application's modules were folded in.
	modules := make(map[string]*domain.ModuleDescriptor, len(all))
	for moduleName, module := range all {
		modules[moduleName] = module
	}
	return domain.NewDescriptors(name, own, modules, doc.Extends, doc.Worker), nil
}
