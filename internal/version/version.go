package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are stamped at release time:
//
//	go build -ldflags="-X github.com/muurk/tuibox/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/tuibox/internal/version.Commit=abc1234"
//
// Local builds fall back to VCS data embedded by the Go toolchain.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fillFromBuildInfo(debug.ReadBuildInfo)
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo reads vcs.* settings from the binary's build info.
func fillFromBuildInfo(read func() (*debug.BuildInfo, bool)) {
	info, ok := read()
	if !ok || info == nil {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}

	if Version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns "version (commit: hash)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
