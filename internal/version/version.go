package version

import "github.com/fatih/color"

// Version information for the mreflow CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionColor = color.New(color.FgGreen, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored returns the version string tinted for terminal output.
func Colored() string {
	return versionColor.Sprint(Version)
}
