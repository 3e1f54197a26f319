package common

// Version information
const (
	// Version is the current application version
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"

	// BuildDate is when the binary was built
	BuildDate = "2026-10-19T00:00:00Z"
)
