// Package cmd implements the command-line interface for ruffyt.
// It provides the update-packages command that rewrites pinned dependency
// versions in pyproject.toml, and the serve command that runs the web
// service.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ruffyt/ruffyt/pkg/errors"
	"github.com/ruffyt/ruffyt/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ruffyt",
	Short: "Minimal web service with dependency-update tooling",
	Long:  `Run the ruffyt web service and keep the project's pinned dependency versions up to date.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success (including "nothing to update")
//   - 2: Tool or manifest failure
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of
// exiting).
//
// Unlike Execute(), this function returns the error directly without
// calling os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updatePackagesCmd)
	rootCmd.AddCommand(serveCmd)
}
