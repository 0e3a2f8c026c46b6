package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridable at link time via -ldflags.
var (
	// Version is the release version string.
	Version = "dev"

	// GitCommit is the commit the binary was built from.
	GitCommit = ""

	// BuildTime is the build timestamp.
	BuildTime = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput()
	},
}

// printVersionOutput prints version, build, and runtime information to stdout.
func printVersionOutput() {
	fmt.Printf("  Version: %s\n", Version)
	fmt.Printf("  Go:      %s\n", runtime.Version())
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
}
