package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "strips single digit revision",
			raw:      "1.85.0-1",
			expected: "1.85.0",
		},
		{
			name:     "strips multi digit revision",
			raw:      "0.44.1-12",
			expected: "0.44.1",
		},
		{
			name:     "no revision passes through",
			raw:      "1.0.0",
			expected: "1.0.0",
		},
		{
			name:     "only trailing revision is stripped",
			raw:      "1.2.3-rc1-2",
			expected: "1.2.3-rc1",
		},
		{
			name:     "alphanumeric suffix is not a revision",
			raw:      "1.2.3-beta",
			expected: "1.2.3-beta",
		},
		{
			name:     "empty string",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.raw))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		available string
		expected  ComparisonResult
	}{
		{
			name:      "identical raw strings",
			installed: "1.0.0",
			available: "1.0.0",
			expected:  Equal,
		},
		{
			name:      "identical raw strings with revision",
			installed: "1.85.0-1",
			available: "1.85.0-1",
			expected:  Equal,
		},
		{
			name:      "revision differences alone are equal",
			installed: "1.2.3-1",
			available: "1.2.3-9",
			expected:  Equal,
		},
		{
			name:      "minor upgrade",
			installed: "1.85.0-1",
			available: "1.86.0-1",
			expected:  UpgradeAvailable,
		},
		{
			name:      "installed ahead of repo",
			installed: "2.0-1",
			available: "1.9-3",
			expected:  InstalledNewer,
		},
		{
			name:      "numeric segments compare as integers not strings",
			installed: "1.9.0",
			available: "1.10.0",
			expected:  UpgradeAvailable,
		},
		{
			name:      "patch release",
			installed: "0.44.0-2",
			available: "0.44.1-1",
			expected:  UpgradeAvailable,
		},
		{
			name:      "prefix is older than its extension",
			installed: "1.2",
			available: "1.2.1",
			expected:  UpgradeAvailable,
		},
		{
			name:      "extension is newer than its prefix",
			installed: "1.2.1",
			available: "1.2",
			expected:  InstalledNewer,
		},
		{
			name:      "alphabetic segments compare lexicographically",
			installed: "1.0a",
			available: "1.0b",
			expected:  UpgradeAvailable,
		},
		{
			name:      "numeric segment orders after alphabetic",
			installed: "1.0rc",
			available: "1.0.1",
			expected:  UpgradeAvailable,
		},
		{
			name:      "leading zeros are insignificant",
			installed: "1.05.0",
			available: "1.5.0",
			expected:  Equal,
		},
		{
			name:      "very long numeric components",
			installed: "20250101000000-1",
			available: "20260101000000-1",
			expected:  UpgradeAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(tt.installed, tt.available))
		})
	}
}

// TestCompareSymmetry checks that any pair ordering holds in both
// directions: if a is older than b, then b is newer than a.
func TestCompareSymmetry(t *testing.T) {
	orderedPairs := [][2]string{
		{"1.85.0-1", "1.86.0-1"},
		{"1.9-3", "2.0-1"},
		{"0.9.9", "1.0.0"},
		{"1.2", "1.2.1"},
		{"5.0rc2-1", "5.0.1-1"},
	}

	for _, pair := range orderedPairs {
		older, newer := pair[0], pair[1]
		assert.Equal(t, UpgradeAvailable, Compare(older, newer),
			"expected %q -> %q to be an upgrade", older, newer)
		assert.Equal(t, InstalledNewer, Compare(newer, older),
			"expected %q over %q to be installed-newer", newer, older)
	}
}

func TestComparisonResultString(t *testing.T) {
	assert.Equal(t, "up to date", Equal.String())
	assert.Equal(t, "upgrade available", UpgradeAvailable.String())
	assert.Equal(t, "installed newer", InstalledNewer.String())
	assert.Equal(t, "unknown", ComparisonResult(42).String())
}
