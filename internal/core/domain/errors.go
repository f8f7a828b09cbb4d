package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when a requested module is not present in the module mapping.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrUnknownModule is returned when a dependency references a module name that was never loaded.
	ErrUnknownModule = zerr.New("unknown module encountered in dependencies")

	// ErrCycleDetected is returned when the topological sort finds a dependency cycle.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrDuplicateModule is returned when a module name is loaded more than once,
	// either across an extends chain or across a multi-application batch.
	ErrDuplicateModule = zerr.New("duplicate module definition")

	// ErrMissingDependency is returned when a module lists a dependency that is
	// absent from the fully accumulated module set.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrDescriptorNotFound is returned when an application or module descriptor
	// resource does not exist.
	ErrDescriptorNotFound = zerr.New("descriptor not found")

	// ErrDescriptorParseFailed is returned when a descriptor resource exists but
	// cannot be parsed into the expected document shape.
	ErrDescriptorParseFailed = zerr.New("failed to parse descriptor")

	// ErrConfigReadFailed is returned when the workspace config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the workspace config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestWriteFailed is returned when a rendered manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrNoApplicationsSpecified is returned when an operation is invoked without
	// any application names and none are configured.
	ErrNoApplicationsSpecified = zerr.New("no applications specified")
)
