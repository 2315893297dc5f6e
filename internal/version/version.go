// Package version holds build metadata, overridden at build time via -ldflags.
package version

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// BuildDate is the build date in ISO-8601.
	BuildDate = "unknown"
)
