// Package version provides build-time version information.
// The variables are set via ldflags during build.
package version

var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// GitCommit is the short git commit hash
	GitCommit = "unknown"
)
