package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ruffyt/ruffyt/pkg/config"
	"github.com/ruffyt/ruffyt/pkg/errors"
	"github.com/ruffyt/ruffyt/pkg/manifest"
	"github.com/ruffyt/ruffyt/pkg/outdated"
	"github.com/ruffyt/ruffyt/pkg/output"
	"github.com/ruffyt/ruffyt/pkg/update"
	"github.com/ruffyt/ruffyt/pkg/verbose"
)

var (
	updateConfigFlag   string
	updateDirFlag      string
	updateManifestFlag string
)

// runUpdateFunc allows stubbing the updater in tests.
var runUpdateFunc = update.Run

var updatePackagesCmd = &cobra.Command{
	Use:   "update-packages",
	Short: "Rewrite pinned versions of outdated direct dependencies",
	Long: `Query the package index for outdated packages and rewrite the pinned
versions of the project's direct dependencies in pyproject.toml.
Transitive dependencies reported by the tool are skipped with a warning.`,
	RunE: runUpdatePackages,
}

func init() {
	updatePackagesCmd.Flags().StringVarP(&updateConfigFlag, "config", "c", "", "Config file path")
	updatePackagesCmd.Flags().StringVarP(&updateDirFlag, "directory", "d", ".", "Directory to operate in")
	updatePackagesCmd.Flags().StringVarP(&updateManifestFlag, "manifest", "m", "", "Manifest file path (default: discover pyproject.toml upwards)")
}

// runUpdatePackages executes the update-packages command.
//
// It performs the following operations:
//   - Step 1: Load configuration for the working directory
//   - Step 2: Resolve the manifest path (flag, config, or discovery)
//   - Step 3: Run the updater with the external outdated report
//   - Step 4: Print the change report
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused positional arguments
//
// Returns:
//   - error: ExitError with the appropriate code on failure
func runUpdatePackages(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(updateConfigFlag, updateDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manifestPath, err := resolveManifestPath(cfg)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	verbose.Infof("Using manifest: %s", manifestPath)

	reporter := func(ctx context.Context) ([]outdated.Entry, error) {
		return outdated.List(ctx, cfg)
	}

	changes, err := runUpdateFunc(cmd.Context(), update.Options{
		ManifestPath: manifestPath,
		Report:       reporter,
	})
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	if len(changes) == 0 {
		fmt.Println("No outdated direct dependencies found.")
		return nil
	}

	printChanges(changes)
	fmt.Printf("\nUpdated %d dependencies in %s\n", len(changes), manifestPath)
	return nil
}

// resolveManifestPath determines which manifest file to rewrite.
//
// Precedence: the --manifest flag, then the configured manifest path
// (resolved against the working directory), then upward discovery of
// pyproject.toml starting from the working directory.
//
// Parameters:
//   - cfg: Resolved configuration
//
// Returns:
//   - string: Manifest file path
//   - error: When discovery fails or the configured path does not exist
func resolveManifestPath(cfg *config.Config) (string, error) {
	path := updateManifestFlag
	if path == "" {
		path = cfg.ManifestPath
	}
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.WorkingDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("manifest not found at %s", path)
		}
		return path, nil
	}

	root, err := manifest.FindProjectRoot(cfg.WorkingDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, manifest.FileName), nil
}

// printChanges prints the applied changes as a table.
//
// Parameters:
//   - changes: Applied changes in manifest declaration order
func printChanges(changes []update.Change) {
	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("CURRENT").
		AddColumn("LATEST")

	for _, change := range changes {
		table.UpdateWidths(change.Name, change.OldVersion, change.NewVersion)
	}

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())
	for _, change := range changes {
		fmt.Println(table.FormatRow(change.Name, change.OldVersion, change.NewVersion))
	}
}
