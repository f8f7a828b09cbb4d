package ports

import "github.com/modb-dev/modb/internal/core/domain"

// DescriptorReader resolves application and module names to parsed descriptor
// documents. Implementations own the storage medium and the serialization
// format; the loader and the store never touch either.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor_reader.go -destination=mocks/mock_descriptor_reader.go -package=mocks
type DescriptorReader interface {
	// ReadApplication returns the application document for the given name,
	// resolved relative to the application directory.
	ReadApplication(dir, name string) (*domain.ApplicationDocument, error)

	// ReadModule returns the descriptor document for the given module name,
	// resolved relative to the application directory.
	ReadModule(dir, name string) (*domain.ModuleDescriptor, error)
}
