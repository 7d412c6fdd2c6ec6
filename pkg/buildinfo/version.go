// Package buildinfo exposes the version stamped into release builds.
//
// Release builds set the variables at link time:
//
//	go build -ldflags "-X github.com/graphlift/graphlift/pkg/buildinfo.Version=v1.2.0 \
//	    -X github.com/graphlift/graphlift/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/graphlift/graphlift/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Development builds fall back to the VCS metadata the Go toolchain
// records, so --version is never blank.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags; empty means "not a release build".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Template returns the cobra version template.
func Template() string {
	commit, date := Commit, Date
	if commit == "" {
		commit = vcsSetting("vcs.revision", "none")
	}
	if date == "" {
		date = vcsSetting("vcs.time", "unknown")
	}
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, commit, date)
}

// vcsSetting reads one key from the build info embedded by the
// toolchain.
func vcsSetting(key, fallback string) string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return fallback
}
