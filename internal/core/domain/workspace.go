package domain

// Workspace is the tool configuration read from modb.yaml: where the
// application descriptors live and which applications to resolve when the
// command line names none.
type Workspace struct {
	AppDir       string
	Applications []string
}
