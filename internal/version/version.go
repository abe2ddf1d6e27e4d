// Package version holds build information set via ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/Dicklesworthstone/coauthor/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns a one-line version string.
func Info() string {
	return fmt.Sprintf("coauthor %s (commit %s, built %s)", Version, Commit, BuildDate)
}
