// Package version exposes build metadata and semantic version helpers.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Set via -ldflags "-X github.com/cbnu/subscribe-service/internal/shared/version.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semver without a prerelease suffix.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}

// Current returns the normalized build version, or "dev" for local builds.
func Current() string {
	if n := Normalize(Version); semver.IsValid(n) {
		return semver.Canonical(n)
	}
	return "dev"
}

// String renders the full build identity.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Current(), Commit, BuildTime)
}
