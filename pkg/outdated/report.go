// Package outdated obtains the outdated-dependency report from the
// external package-index tool. The tool is expected to print a JSON array
// of objects with name, version, and latest_version fields, which is what
// `uv pip list --outdated --format json` and `pip list --outdated
// --format json` both produce.
package outdated

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ruffyt/ruffyt/pkg/cmdexec"
	"github.com/ruffyt/ruffyt/pkg/config"
	"github.com/ruffyt/ruffyt/pkg/errors"
	"github.com/ruffyt/ruffyt/pkg/verbose"
)

// Entry describes one outdated package reported by the external tool.
//
// Fields:
//   - Name: Package name as reported by the tool
//   - Version: Currently installed version
//   - LatestVersion: Newest version available from the package index
type Entry struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	LatestVersion string `json:"latest_version"`
}

// executeFunc allows stubbing command execution in tests.
var executeFunc = cmdexec.Execute

// UTF-8 BOM bytes (EF BB BF)
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// List runs the configured outdated command and parses its report.
//
// Any execution failure or unparseable output is returned as a ToolError;
// the caller surfaces it and aborts without touching the manifest.
//
// Parameters:
//   - ctx: Context for cancellation
//   - cfg: Configuration carrying the command, timeout, and working dir
//
// Returns:
//   - []Entry: Outdated packages in the order the tool reported them
//   - error: ToolError on execution or parse failure
func List(ctx context.Context, cfg *config.Config) ([]Entry, error) {
	output, err := executeFunc(ctx, cfg.OutdatedCommand, nil, cfg.WorkingDir, cfg.TimeoutSeconds)
	if err != nil {
		return nil, errors.NewToolError(cfg.OutdatedCommand, err)
	}

	entries, err := parseReport(output)
	if err != nil {
		return nil, errors.NewToolError(cfg.OutdatedCommand, err)
	}

	verbose.Infof("Outdated report: %d entries", len(entries))
	return entries, nil
}

// parseReport decodes the tool's JSON output into entries.
//
// It performs the following operations:
//   - Step 1: Strip a UTF-8 BOM if present
//   - Step 2: Decode the JSON array
//   - Step 3: Reject entries missing a name or latest version
//
// An empty report (empty array or whitespace-only output) is valid and
// yields an empty slice.
//
// Parameters:
//   - output: Raw bytes printed by the external tool
//
// Returns:
//   - []Entry: Decoded entries
//   - error: When the output is not a valid report
func parseReport(output []byte) ([]Entry, error) {
	output = bytes.TrimSpace(stripBOM(output))
	if len(output) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("unparseable outdated report: %w", err)
	}

	for _, entry := range entries {
		if entry.Name == "" || entry.LatestVersion == "" {
			return nil, fmt.Errorf("outdated report entry missing name or latest_version: %+v", entry)
		}
	}

	return entries, nil
}

// stripBOM removes a UTF-8 BOM from the beginning of output if present.
//
// Parameters:
//   - output: Raw bytes that may start with a UTF-8 BOM
//
// Returns:
//   - []byte: The output with BOM removed if present, unchanged otherwise
func stripBOM(output []byte) []byte {
	if bytes.HasPrefix(output, utf8BOM) {
		return output[len(utf8BOM):]
	}
	return output
}
