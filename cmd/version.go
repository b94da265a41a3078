// Package cmd holds build metadata for the preflight binary.
package cmd

// Set with -ldflags "-X github.com/thoreinstein/preflight/cmd.Version=...".
var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
