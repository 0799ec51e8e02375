package commons

import (
	"fmt"
	"strings"
)

// BuildInfo identifies a binary release.
type BuildInfo struct {
	App     string
	Version string
	Commit  string
}

// String returns "<app>:<version>[-<commit>]".
func (b BuildInfo) String() string {
	if b.Commit == "" {
		return fmt.Sprintf("%s:%s", b.App, b.Version)
	}
	return fmt.Sprintf("%s:%s-%s", b.App, b.Version, b.Commit)
}

var buildInfo = BuildInfo{App: "deposit-settings", Version: "latest"}

// ParseVersion splits "<version>-<commit>" as produced by the release build.
// A version without a commit suffix is returned unchanged.
func ParseVersion(full string) (version, commit string) {
	idx := strings.LastIndex(full, "-")
	if idx <= 0 || idx == len(full)-1 {
		return full, ""
	}
	return full[:idx], full[idx+1:]
}

// SetBuildData records the application name and its full version string.
func SetBuildData(app, fullVersion string) {
	version, commit := ParseVersion(fullVersion)
	buildInfo = BuildInfo{App: app, Version: version, Commit: commit}
}

// GetBuildData returns the recorded build as a single string.
func GetBuildData() string {
	return buildInfo.String()
}
