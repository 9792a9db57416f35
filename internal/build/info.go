// Package build exposes build-time metadata injected via ldflags.
package build

import "runtime"

// Version, Commit, and Date are set at build time by:
//
//	-ldflags "-X github.com/joestump/joe-bookmarks/internal/build.Version=... ..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the build metadata reported by the version command and /healthz.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
}
