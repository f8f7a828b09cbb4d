package ports

// ManifestWriter persists rendered manifest documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_writer.go -destination=mocks/mock_manifest_writer.go -package=mocks
type ManifestWriter interface {
	// Write stores data at path, creating parent directories as needed.
	// It reports whether the file was rewritten; the write is skipped when
	// the existing content is already identical.
	Write(path string, data []byte) (bool, error)
}
