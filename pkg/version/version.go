// Package version exposes build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/rshade/commentgrid/pkg/version.version=v1.2.0"
var (
	version   = "dev"     //nolint:gochecknoglobals // ldflags target
	gitCommit = "unknown" //nolint:gochecknoglobals // ldflags target
	buildDate = "unknown" //nolint:gochecknoglobals // ldflags target
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Full returns the one-line version string printed by --version.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s/%s)",
		version, gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
