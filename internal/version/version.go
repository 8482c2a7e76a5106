// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version of the application
	Version = "dev"
	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"
	// BuildTime is the time when the binary was built (RFC3339 format)
	BuildTime = "unknown"
)

// Get returns the application version, falling back to module build info
// for go-install builds.
func Get() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return Version
}

// Full returns a one-line description with commit and platform.
func Full() string {
	return fmt.Sprintf("questoes %s (commit %s, built %s, %s, %s/%s)",
		Get(), GitCommit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
