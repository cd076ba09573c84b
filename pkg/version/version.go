// Package version reports the sensorpoll build, injected via ldflags.
package version

import "runtime"

// These variables are set via ldflags during build
//
//nolint:gochecknoglobals // These are intentionally global for ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	BuildID   string `json:"build_id"`
	GoVersion string `json:"go_version"`
}

// Get returns the build info of this binary.
func Get() Info {
	return Info{
		Version:   version,
		BuildID:   buildID,
		GoVersion: runtime.Version(),
	}
}

// String formats as "version (build: id)".
func (i Info) String() string {
	return i.Version + " (build: " + i.BuildID + ")"
}
