// Package project locates the install scripts directory.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScriptsDirName is the conventional directory holding install scripts.
const ScriptsDirName = "apps"

// scriptSuffix mirrors the runner's unit naming convention.
const scriptSuffix = "-install"

// FindScriptsDir resolves the install scripts directory. An explicit
// path always wins, then the nearest apps/ directory walking up from
// the working directory, then the configured default.
func FindScriptsDir(explicit, configured string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findFrom(cwd, explicit, configured)
}

func findFrom(start, explicit, configured string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	// Walk up the directory tree
	dir := start
	for {
		candidate := filepath.Join(dir, ScriptsDirName)
		if hasInstallScripts(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	if configured != "" {
		return configured, nil
	}

	return "", fmt.Errorf("could not find an install scripts directory (looked for %s/ containing *%s scripts)", ScriptsDirName, scriptSuffix)
}

// hasInstallScripts reports whether dir contains at least one install
// script. A bare apps/ directory without scripts does not count as a
// project root.
func hasInstallScripts(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), scriptSuffix) {
			return true
		}
	}
	return false
}
