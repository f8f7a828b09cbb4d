// Package build holds build-time information.
package build

// Version is the modb version. It defaults to "dev" and is overwritten by
// linker flags at release time.
var Version = "dev"
