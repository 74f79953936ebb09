// Package version exposes build-time version metadata.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time via ldflags.
var (
	Version  = "0.0.0"
	Revision = "unknown"
	BuiltAt  = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	GoVersion string `json:"go_version"`
}

// Get returns the version information.
func Get() Info {
	return Info{
		Version:   Version,
		Revision:  Revision,
		BuiltAt:   BuiltAt,
		GoVersion: runtime.Version(),
	}
}

// String returns a one-line rendering suitable for CLI output.
func (i Info) String() string {
	return fmt.Sprintf("carmarket %s (%s, built %s, %s)", i.Version, i.Revision, i.BuiltAt, i.GoVersion)
}
