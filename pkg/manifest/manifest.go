// Package manifest reads and rewrites the project's pyproject.toml.
// It locates the [project] dependencies block, parses each declared
// specifier together with the byte offsets of its version strings, and
// applies in-place edits that leave every byte outside the replaced
// version spans untouched.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"

	"github.com/ruffyt/ruffyt/pkg/errors"
	"github.com/ruffyt/ruffyt/pkg/verbose"
)

// FileName is the manifest file ruffyt operates on.
const FileName = "pyproject.toml"

// Manifest holds a loaded manifest file and its parsed dependency block.
//
// Fields:
//   - Path: Path the manifest was loaded from
//   - Raw: The full file content; never mutated in place
//   - Specifiers: Parsed direct-dependency specifiers keyed by normalized
//     name, in declaration order
type Manifest struct {
	Path       string
	Raw        []byte
	Specifiers *orderedmap.OrderedMap
}

// pyprojectDoc mirrors the subset of pyproject.toml needed to cross-check
// the dependency block located by offset scanning.
type pyprojectDoc struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// dependencyOpenRe matches the opening of a `dependencies = [` assignment.
// The closing bracket is found by scanning, not by the regex: a `]` can
// sit inside a quoted entry (an extras list such as "uvicorn[standard]")
// and must not end the block.
var dependencyOpenRe = regexp.MustCompile(`dependencies\s*=\s*\[`)

// stringLiteralRe matches a basic or literal TOML string inside the block.
var stringLiteralRe = regexp.MustCompile(`"([^"\\]*)"|'([^']*)'`)

// Load reads and parses the manifest at path.
//
// It performs the following operations:
//   - Step 1: Read the file
//   - Step 2: Decode it as TOML and extract [project].dependencies
//   - Step 3: Locate the matching dependencies block by byte offset
//   - Step 4: Parse every declared specifier, recording version spans
//
// All failures are reported as ManifestError; the file is never written
// by this function.
//
// Parameters:
//   - path: Manifest file path
//
// Returns:
//   - *Manifest: The loaded manifest with parsed specifiers
//   - error: ManifestError when the file or its block is missing/malformed
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewManifestError(path, "cannot read manifest", err)
	}

	var doc pyprojectDoc
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewManifestError(path, "invalid TOML", err)
	}
	if doc.Project.Dependencies == nil {
		return nil, errors.NewManifestError(path, "no [project] dependencies block found", nil)
	}

	entries, err := locateDependencyEntries(raw, doc.Project.Dependencies)
	if err != nil {
		return nil, errors.NewManifestError(path, err.Error(), nil)
	}

	specifiers := orderedmap.New()
	for _, entry := range entries {
		spec, err := ParseSpecifier(entry.text, entry.start)
		if err != nil {
			return nil, errors.NewManifestError(path, fmt.Sprintf("invalid dependency specifier %q", entry.text), err)
		}
		key := NormalizeName(spec.Name)
		if _, exists := specifiers.Get(key); exists {
			return nil, errors.NewManifestError(path, fmt.Sprintf("duplicate dependency %q", spec.Name), nil)
		}
		specifiers.Set(key, spec)
	}

	verbose.Infof("Manifest %s: %d direct dependencies", path, len(specifiers.Keys()))
	return &Manifest{Path: path, Raw: raw, Specifiers: specifiers}, nil
}

// entrySpan is one quoted dependency string with its absolute offset.
type entrySpan struct {
	text  string
	start int
}

// locateDependencyEntries finds the dependencies block whose string
// literals match the structurally decoded dependency list.
//
// More than one table can carry a `dependencies` key (build backends and
// tools do), so every candidate block is compared against the decoded
// [project] list and only an exact match is accepted.
//
// Parameters:
//   - raw: Full manifest content
//   - want: Dependency strings decoded from [project].dependencies
//
// Returns:
//   - []entrySpan: One span per declared dependency, in declaration order
//   - error: When no block matches the decoded list
func locateDependencyEntries(raw []byte, want []string) ([]entrySpan, error) {
	for _, open := range dependencyOpenRe.FindAllIndex(raw, -1) {
		bodyStart := open[1]
		bodyEnd, ok := findArrayEnd(raw, bodyStart)
		if !ok {
			continue
		}
		entries := scanStringLiterals(raw[bodyStart:bodyEnd], bodyStart)
		if !entriesMatch(entries, want) {
			continue
		}
		return entries, nil
	}
	return nil, fmt.Errorf("dependencies block does not match [project] dependencies")
}

// findArrayEnd scans from the byte after an opening bracket to the
// matching closing bracket.
//
// Brackets inside string literals and comments do not count, so an
// extras list inside a quoted entry cannot terminate the array early.
//
// Parameters:
//   - raw: Full manifest content
//   - start: Offset of the first byte after the opening bracket
//
// Returns:
//   - int: Offset of the matching closing bracket
//   - bool: false when the array is unterminated
func findArrayEnd(raw []byte, start int) (int, bool) {
	depth := 1
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '"', '\'':
			quote := raw[i]
			for i++; i < len(raw) && raw[i] != quote; i++ {
				if quote == '"' && raw[i] == '\\' {
					i++
				}
			}
		case '#':
			for i < len(raw) && raw[i] != '\n' {
				i++
			}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// scanStringLiterals extracts quoted strings from a block body.
//
// Parameters:
//   - body: The block body bytes
//   - offset: Absolute offset of body within the manifest
//
// Returns:
//   - []entrySpan: Literal contents with absolute start offsets
func scanStringLiterals(body []byte, offset int) []entrySpan {
	var entries []entrySpan
	for _, m := range stringLiteralRe.FindAllSubmatchIndex(body, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		entries = append(entries, entrySpan{
			text:  string(body[start:end]),
			start: offset + start,
		})
	}
	return entries
}

// entriesMatch reports whether scanned literals equal the decoded list.
func entriesMatch(entries []entrySpan, want []string) bool {
	if len(entries) != len(want) {
		return false
	}
	for i, entry := range entries {
		if entry.text != want[i] {
			return false
		}
	}
	return true
}

// FindProjectRoot walks upward from start until a pyproject.toml is found.
//
// This makes the updater independent of where it is invoked inside the
// project tree, matching the behavior of running it from a subdirectory.
//
// Parameters:
//   - start: Directory to start searching from
//
// Returns:
//   - string: Directory containing pyproject.toml
//   - error: When no pyproject.toml exists on the path to the filesystem root
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found upwards from %s", FileName, start)
		}
		dir = parent
	}
}
