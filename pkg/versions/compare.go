// Package versions compares dependency version strings.
// Python package versions are close enough to semver for ordering the
// numeric release segment; this package canonicalizes onto
// golang.org/x/mod/semver and falls back to trusting the outdated report
// when a version cannot be mapped.
package versions

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsNewer reports whether latest represents a newer release than current.
//
// Both versions are canonicalized onto semver for comparison. When the
// release segments tie but the raw strings differ, a pre, post or dev
// suffix is what separates them (e.g. "1.2.3rc1" against "1.2.3"); such
// pairs defer to the external tool's judgement that an update exists, as
// does any pair where canonicalization fails outright.
//
// Parameters:
//   - latest: The candidate newer version
//   - current: The version currently pinned or installed
//
// Returns:
//   - bool: true if latest should replace current
func IsNewer(latest, current string) bool {
	lv, lok := Canonical(latest)
	cv, cok := Canonical(current)
	if lok && cok {
		if c := semver.Compare(lv, cv); c != 0 {
			return c > 0
		}
		if lv != cv {
			// Same release spelled with differing precision, e.g.
			// "1.20" against "1.20.0". Not an update.
			return false
		}
	}
	return strings.TrimSpace(latest) != strings.TrimSpace(current)
}

// Canonical maps a version string onto a semver-comparable form.
//
// It performs the following operations:
//   - Step 1: Trim whitespace and a leading "v" if present
//   - Step 2: Keep the leading numeric release segment (digits and dots),
//     dropping pre/post/dev suffixes
//   - Step 3: Prefix "v" and validate with semver.IsValid
//
// Parameters:
//   - version: Raw version string (e.g. "2.28.0", "1.2.3rc1")
//
// Returns:
//   - string: Canonical "vX.Y.Z"-style version, empty when invalid
//   - bool: true when the result is a valid semver string
func Canonical(version string) (string, bool) {
	v := strings.TrimSpace(version)
	v = strings.TrimPrefix(v, "v")
	if v == "" {
		return "", false
	}

	end := len(v)
	for i, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			end = i
			break
		}
	}
	v = strings.TrimSuffix(v[:end], ".")
	if v == "" {
		return "", false
	}

	candidate := "v" + v
	if !semver.IsValid(candidate) {
		return "", false
	}
	return candidate, true
}
