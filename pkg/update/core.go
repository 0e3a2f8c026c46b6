// Package update implements the dependency updater.
// It matches the outdated report against the manifest's declared direct
// dependencies, computes in-place version rewrites, and writes the
// manifest back only when at least one change was made. All failures
// occur strictly before the write, so the manifest is never left
// partially rewritten.
package update

import (
	"context"
	"io/fs"
	"os"

	"github.com/ruffyt/ruffyt/pkg/manifest"
	"github.com/ruffyt/ruffyt/pkg/outdated"
	"github.com/ruffyt/ruffyt/pkg/verbose"
	"github.com/ruffyt/ruffyt/pkg/versions"
	"github.com/ruffyt/ruffyt/pkg/warnings"
)

// Change records one applied dependency update.
//
// Fields:
//   - Name: Package name as declared in the manifest
//   - OldVersion: Installed version from the outdated report
//   - NewVersion: Version the manifest now pins
type Change struct {
	Name       string
	OldVersion string
	NewVersion string
}

// Reporter obtains the outdated-dependency report.
//
// Abstracting the external tool behind this narrow function type lets
// tests substitute a fixed report without invoking anything.
type Reporter func(ctx context.Context) ([]outdated.Entry, error)

// Options configures a single updater run.
//
// Fields:
//   - ManifestPath: Path of the manifest to rewrite
//   - Report: Source of the outdated report
type Options struct {
	ManifestPath string
	Report       Reporter
}

// Injection points for tests.
var (
	loadManifestFunc = manifest.Load
	writeFileFunc    = os.WriteFile
)

// defaultFileMode is used when the original file mode cannot be read.
const defaultFileMode fs.FileMode = 0o644

// Run executes the updater once.
//
// It performs the following operations:
//   - Step 1: Fetch the outdated report (aborts on ToolError)
//   - Step 2: Load and parse the manifest (aborts on ManifestError)
//   - Step 3: Match report entries to declared direct dependencies; warn
//     and skip entries with no declaration (transitive dependencies)
//   - Step 4: Compute an in-place edit per matched specifier, preserving
//     the constraint operator and all other clauses
//   - Step 5: Apply the edits and write the manifest, but only when at
//     least one change was computed
//
// Specifiers without a matching report entry are left byte-identical.
// A run that computes no changes performs no write at all.
//
// Parameters:
//   - ctx: Context for cancellation of the external tool call
//   - opts: Run options with manifest path and report source
//
// Returns:
//   - []Change: Applied changes in manifest declaration order
//   - error: ToolError, ManifestError, or write failure
func Run(ctx context.Context, opts Options) ([]Change, error) {
	entries, err := opts.Report(ctx)
	if err != nil {
		return nil, err
	}

	m, err := loadManifestFunc(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	report := make(map[string]outdated.Entry, len(entries))
	for _, entry := range entries {
		report[manifest.NormalizeName(entry.Name)] = entry
	}

	var edits []manifest.Edit
	var changes []Change
	matched := make(map[string]bool, len(entries))

	for _, key := range m.Specifiers.Keys() {
		entry, ok := report[key]
		if !ok {
			continue
		}
		matched[key] = true

		value, _ := m.Specifiers.Get(key)
		spec := value.(manifest.Specifier)

		edit, change, ok := planSpecifierUpdate(spec, entry)
		if !ok {
			continue
		}
		edits = append(edits, edit)
		changes = append(changes, change)
	}

	// Only direct dependencies are ever rewritten; anything else in the
	// report is assumed transitive and skipped.
	for _, entry := range entries {
		if !matched[manifest.NormalizeName(entry.Name)] {
			warnings.Warnf("Skipping %s (%s -> %s): not a direct dependency\n", entry.Name, entry.Version, entry.LatestVersion)
		}
	}

	if len(edits) == 0 {
		verbose.Infof("No changes computed, leaving %s untouched", opts.ManifestPath)
		return nil, nil
	}

	updated, err := m.Apply(edits)
	if err != nil {
		return nil, err
	}

	mode := defaultFileMode
	if info, err := os.Stat(opts.ManifestPath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := writeFileFunc(opts.ManifestPath, updated, mode); err != nil {
		return nil, err
	}

	verbose.Infof("Wrote %s with %d updated dependencies", opts.ManifestPath, len(changes))
	return changes, nil
}

// planSpecifierUpdate computes the edit for one matched specifier.
//
// The constraint operator and every other clause are preserved; only the
// version of the floor clause is replaced. A bare specifier (no version
// clause) is pinned exactly to the latest version. Entries whose latest
// version is not actually newer, or that already pin the latest version,
// produce no edit.
//
// Parameters:
//   - spec: The declared specifier
//   - entry: The matching outdated report entry
//
// Returns:
//   - manifest.Edit: The byte-span replacement to apply
//   - Change: The change record for reporting
//   - bool: false when the specifier should be left untouched
func planSpecifierUpdate(spec manifest.Specifier, entry outdated.Entry) (manifest.Edit, Change, bool) {
	latest := entry.LatestVersion

	if !versions.IsNewer(latest, entry.Version) {
		warnings.Warnf("Skipping %s: reported latest %s is not newer than %s\n", entry.Name, latest, entry.Version)
		return manifest.Edit{}, Change{}, false
	}

	change := Change{Name: spec.Name, OldVersion: entry.Version, NewVersion: latest}

	clause := spec.FloorClause()
	if clause == nil {
		// Bare specifier: pin it exactly.
		edit := manifest.Edit{Start: spec.NameEnd, End: spec.NameEnd, Text: "==" + latest}
		return edit, change, true
	}

	if clause.Version == latest {
		verbose.Infof("%s already declares %s", spec.Name, latest)
		return manifest.Edit{}, Change{}, false
	}

	edit := manifest.Edit{Start: clause.VersionStart, End: clause.VersionEnd, Text: latest}
	return edit, change, true
}
