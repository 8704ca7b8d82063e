// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/geocore/geocore/pkg/buildinfo.Version=v0.9.0 \
//	    -X github.com/geocore/geocore/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/geocore/geocore/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/geocore
package buildinfo

import "fmt"

// Name is the program name shown in headers and generated files.
const Name = "geocore"

var (
	// Version is the semantic version (e.g., "v0.9.0").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns "geocore <version>".
func Short() string {
	return Name + " " + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
