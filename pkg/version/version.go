// Package version reports the prtgcli build stamped in by the linker.
package version

import "fmt"

// Set with -ldflags "-X github.com/carverauto/prtgcli/pkg/version.version=..."
//
//nolint:gochecknoglobals // These are intentionally global for ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// GetVersion returns the current version
func GetVersion() string {
	return version
}

// GetBuildID returns the current build ID
func GetBuildID() string {
	return buildID
}

// GetFullVersion returns version with build ID
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}

// Banner is the -version output for the named binary.
func Banner(binary string) string {
	return fmt.Sprintf("%s %s", binary, GetFullVersion())
}
