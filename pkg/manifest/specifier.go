package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// Clause is a single version-constraint clause of a specifier.
//
// Fields:
//   - Op: Constraint operator ("==", ">=", "~=", "!=", "<", "<=", ">", "===")
//   - Version: The version string the operator applies to
//   - VersionStart: Absolute byte offset of Version within the manifest
//   - VersionEnd: Absolute byte offset one past the end of Version
type Clause struct {
	Op           string
	Version      string
	VersionStart int
	VersionEnd   int
}

// Specifier is one declared direct dependency.
//
// Fields:
//   - Name: Package name exactly as declared
//   - Raw: Full specifier text (the quoted string's content)
//   - Start: Absolute byte offset of Raw within the manifest
//   - NameEnd: Absolute byte offset just past the name and extras, where a
//     pin can be inserted for bare specifiers
//   - Clauses: Version-constraint clauses in declaration order; empty for
//     a bare name or extras-only specifier
type Specifier struct {
	Name    string
	Raw     string
	Start   int
	NameEnd int
	Clauses []Clause
}

var (
	// specifierNameRe matches a PEP 508 package name at the start of a
	// specifier, optionally followed by an extras list.
	specifierNameRe = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(\[[^\]]*\])?`)

	// clauseRe matches one constraint clause. Longer operators come first
	// so "==" is not consumed as "=" fragments.
	clauseRe = regexp.MustCompile(`(===|==|~=|!=|<=|>=|<|>)\s*([A-Za-z0-9.*+!_-]+)`)

	// normalizeRe collapses name separator runs per the package-index
	// normalization rules.
	normalizeRe = regexp.MustCompile(`[-_.]+`)
)

// ParseSpecifier parses a dependency specifier string.
//
// It performs the following operations:
//   - Step 1: Extract the package name and optional extras
//   - Step 2: Cut off any environment marker (everything after ";")
//   - Step 3: Extract constraint clauses with byte offsets relative to the
//     specifier, shifted to absolute manifest offsets via start
//
// Environment markers are never rewritten, so clauses are only scanned in
// the portion before the marker separator.
//
// Parameters:
//   - text: The specifier text (e.g. `requests>=2.0,<3.0`)
//   - start: Absolute byte offset of text within the manifest
//
// Returns:
//   - Specifier: Parsed specifier with clause version spans
//   - error: When no package name can be extracted
func ParseSpecifier(text string, start int) (Specifier, error) {
	nameMatch := specifierNameRe.FindStringSubmatchIndex(text)
	if nameMatch == nil {
		return Specifier{}, fmt.Errorf("no package name in specifier")
	}

	constraintRegion := text
	if idx := strings.Index(text, ";"); idx >= 0 {
		constraintRegion = text[:idx]
	}

	nameEnd := nameMatch[3]
	if nameMatch[4] >= 0 {
		nameEnd = nameMatch[5] // include the extras list
	}

	spec := Specifier{
		Name:    text[nameMatch[2]:nameMatch[3]],
		Raw:     text,
		Start:   start,
		NameEnd: start + nameEnd,
	}

	for _, m := range clauseRe.FindAllStringSubmatchIndex(constraintRegion, -1) {
		spec.Clauses = append(spec.Clauses, Clause{
			Op:           constraintRegion[m[2]:m[3]],
			Version:      constraintRegion[m[4]:m[5]],
			VersionStart: start + m[4],
			VersionEnd:   start + m[5],
		})
	}

	return spec, nil
}

// FloorClause returns the clause whose version should carry an update.
//
// The first clause whose operator can express a new floor is chosen:
// exact pins ("==", "==="), lower bounds (">=", ">"), and compatible
// releases ("~="). Exclusions and upper bounds are left alone so a
// declared ceiling survives the rewrite.
//
// Returns:
//   - *Clause: The clause to rewrite, or nil when none qualifies
func (s *Specifier) FloorClause() *Clause {
	for i := range s.Clauses {
		switch s.Clauses[i].Op {
		case "==", "===", ">=", "~=", ">":
			return &s.Clauses[i]
		}
	}
	return nil
}

// DeclaredVersion returns the version the specifier currently pins.
//
// Returns:
//   - string: The floor clause's version, or empty for bare specifiers
func (s *Specifier) DeclaredVersion() string {
	if clause := s.FloorClause(); clause != nil {
		return clause.Version
	}
	return ""
}

// NormalizeName normalizes a package name for matching.
//
// Package indexes treat names case-insensitively and consider ".", "_",
// and "-" interchangeable; declared names and report names must meet in
// the same form or direct dependencies would be missed.
//
// Parameters:
//   - name: Raw package name
//
// Returns:
//   - string: Lowercased name with separator runs collapsed to "-"
func NormalizeName(name string) string {
	return normalizeRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
