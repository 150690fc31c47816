/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package version exposes build-time identifying information, populated via
// -ldflags at release build time and falling back to runtime/debug build
// info otherwise.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info is the structured view of the three build-time fields.
type Info struct {
	Version    string
	CommitHash string
	BuildDate  string
}

// GetCurrentVersion resolves Info, falling back to the module's own build
// info when ldflags were not set (e.g. `go run`/`go install`).
func GetCurrentVersion() Info {
	v, c, d := Version, CommitHash, BuildDate
	if v == "dev" || c == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			if v == "dev" {
				v = strings.TrimPrefix(info.Main.Version, "v")
			}
		}
	}
	return Info{Version: v, CommitHash: c, BuildDate: d}
}

// String renders a one-line identifier, e.g. "micronix 1.2.0 (abcd123)".
func (i Info) String() string {
	return fmt.Sprintf("micronix %s (%s)", i.Version, i.CommitHash)
}
