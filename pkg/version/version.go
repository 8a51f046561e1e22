// Package version exposes build metadata stamped at link time.
package version

// Overridden via -ldflags "-X .../pkg/version.Version=..." at release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
