// Package version compares pacman-style package version strings.
package version

import (
	"regexp"
	"strings"
)

// ComparisonResult is the outcome of comparing an installed version
// against the version available from the repositories or the AUR.
type ComparisonResult int

const (
	// Equal means the installed version matches the available one.
	Equal ComparisonResult = iota
	// UpgradeAvailable means the available version is newer.
	UpgradeAvailable
	// InstalledNewer means the installed version is ahead of the available
	// one, e.g. after a repository rollback or a local rebuild.
	InstalledNewer
)

// String returns a human-readable representation of the result.
func (r ComparisonResult) String() string {
	switch r {
	case Equal:
		return "up to date"
	case UpgradeAvailable:
		return "upgrade available"
	case InstalledNewer:
		return "installed newer"
	default:
		return "unknown"
	}
}

// revisionSuffix matches the pkgrel suffix pacman appends to versions,
// e.g. the "-1" in "1.85.0-1".
var revisionSuffix = regexp.MustCompile(`-\d+$`)

// Clean strips the trailing package revision from a raw version string.
// "1.85.0-1" becomes "1.85.0"; versions without a revision pass through
// unchanged.
func Clean(raw string) string {
	return revisionSuffix.ReplaceAllString(raw, "")
}

// Compare reports how the installed version relates to the available one.
// Byte-identical raw strings are equal without any normalization. Otherwise
// both sides are cleaned of their revision suffix first, so "1.2.3-1" and
// "1.2.3-9" still compare as Equal.
func Compare(installedRaw, availableRaw string) ComparisonResult {
	if installedRaw == availableRaw {
		return Equal
	}
	switch compareClean(Clean(installedRaw), Clean(availableRaw)) {
	case 0:
		return Equal
	case -1:
		return UpgradeAvailable
	default:
		return InstalledNewer
	}
}

// compareClean orders two cleaned version strings, returning -1, 0 or 1.
// Versions split into numeric and alphabetic segments with separators
// discarded; numeric segments compare as integers, alphabetic segments
// lexicographically, and a strict prefix orders before its extension.
func compareClean(a, b string) int {
	as, bs := segments(a), segments(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// segments splits a version into runs of digits and runs of letters.
// "1.85rc2" yields ["1", "85", "rc", "2"].
func segments(v string) []string {
	var segs []string
	var cur strings.Builder
	var numeric bool

	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, cur.String())
			cur.Reset()
		}
	}

	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			if cur.Len() > 0 && !numeric {
				flush()
			}
			numeric = true
			cur.WriteRune(r)
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if cur.Len() > 0 && numeric {
				flush()
			}
			numeric = false
			cur.WriteRune(r)
		default:
			// separator
			flush()
		}
	}
	flush()

	return segs
}

func compareSegment(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		// Numeric segments order after alphabetic ones, matching vercmp.
		return 1
	case bNum:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// isNumeric reports whether a segment is a digit run. Segments are
// homogeneous, so the first byte decides.
func isNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// compareNumeric compares two digit runs as integers without parsing them,
// so arbitrarily long version components cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
