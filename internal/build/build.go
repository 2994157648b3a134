// Package build holds build-time information.
package build

// Overwritten by linker flags at release time.
var (
	// Version is the application version.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)
