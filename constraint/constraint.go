// Package constraint implements version constraint matching for module
// dependencies.
//
// Constraint grammar, evaluated in this priority:
//
//   - "*"         matches any version
//   - "^X.Y.Z"    version >= X.Y.Z with the same major component
//   - "~X.Y.Z"    version >= X.Y.Z with the same major and minor components
//   - ">=V", "<=V", ">V", "<V"  numeric comparison against V
//   - anything else  exact match after normalization
//
// Versions are normalized before comparison: the string is split on ".",
// missing components default to 0 and non-numeric components coerce to 0,
// then components compare as integers ("10.0.0" > "9.0.0", not string
// order). Pre-release and build metadata are not supported.
package constraint

import (
	"strconv"
	"strings"
)

// componentCount is the number of version components compared
// (major, minor, patch).
const componentCount = 3

// Components is a normalized major.minor.patch triple.
type Components [componentCount]int

// Normalize parses a version string into its numeric components.
// Missing components default to 0; non-numeric components coerce to 0.
func Normalize(version string) Components {
	var c Components
	parts := strings.Split(strings.TrimSpace(version), ".")
	for i := 0; i < componentCount && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			n = 0
		}
		c[i] = n
	}
	return c
}

// Compare compares two version strings component-wise.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b string) int {
	ca, cb := Normalize(a), Normalize(b)
	for i := 0; i < componentCount; i++ {
		if ca[i] < cb[i] {
			return -1
		}
		if ca[i] > cb[i] {
			return 1
		}
	}
	return 0
}

// Satisfies reports whether version satisfies the given constraint
// expression. An empty constraint is treated like "*".
func Satisfies(version, expr string) bool {
	expr = strings.TrimSpace(expr)
	version = strings.TrimSpace(version)

	switch {
	case expr == "" || expr == "*":
		return true

	case strings.HasPrefix(expr, "^"):
		base := expr[1:]
		return Compare(version, base) >= 0 &&
			Normalize(version)[0] == Normalize(base)[0]

	case strings.HasPrefix(expr, "~"):
		base := expr[1:]
		v, b := Normalize(version), Normalize(base)
		return Compare(version, base) >= 0 && v[0] == b[0] && v[1] == b[1]

	// ">=" and "<=" must be checked before ">" and "<".
	case strings.HasPrefix(expr, ">="):
		return Compare(version, expr[2:]) >= 0

	case strings.HasPrefix(expr, "<="):
		return Compare(version, expr[2:]) <= 0

	case strings.HasPrefix(expr, ">"):
		return Compare(version, expr[1:]) > 0

	case strings.HasPrefix(expr, "<"):
		return Compare(version, expr[1:]) < 0

	default:
		return Compare(version, expr) == 0
	}
}

// Max returns the higher of two versions.
func Max(a, b string) string {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}
