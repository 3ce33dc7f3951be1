package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the mamushi CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI. It also keys the format
	// cache, so it stays free of escape codes.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with each numeric component in its own color.
// Anything after the patch number (pre-release, build) stays plain.
func Colored() string {
	core, rest, _ := strings.Cut(Version, "-")
	nums := strings.SplitN(core, ".", 3)
	if len(nums) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(nums[0]) + "." + versionMinorColor.Sprint(nums[1]) + "." + versionPatchColor.Sprint(nums[2])
	if rest != "" {
		out += "-" + rest
	}
	return out
}
