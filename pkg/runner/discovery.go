package runner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// UnitSuffix is the naming convention install scripts must follow.
const UnitSuffix = "-install"

// OrchestratorName is the batch entry point's own filename. It matches
// the unit suffix, so discovery excludes it explicitly.
const OrchestratorName = "install-all"

// Discoverer enumerates install units. The directory scan hides behind
// this interface so tests can inject fixed unit lists.
type Discoverer interface {
	Discover() ([]Unit, error)
}

// StaticDiscoverer returns a fixed unit list.
type StaticDiscoverer []Unit

// Discover returns the units as given.
func (d StaticDiscoverer) Discover() ([]Unit, error) {
	return []Unit(d), nil
}

// DirDiscoverer scans a single directory, non-recursively, for files
// ending in -install.
type DirDiscoverer struct {
	Dir  string
	Self string // entry name to exclude, defaults to OrchestratorName
}

// NewDirDiscoverer creates a discoverer for the given scripts directory.
func NewDirDiscoverer(dir string) *DirDiscoverer {
	return &DirDiscoverer{Dir: dir, Self: OrchestratorName}
}

// Discover enumerates matching files sorted ascending by filename. The
// sort order is the execution order; no dependency ordering exists
// between units. An empty result is not an error, callers decide
// whether an empty batch is fatal.
func (d *DirDiscoverer) Discover() ([]Unit, error) {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("scripts directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scripts path is not a directory: %s", d.Dir)
	}

	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	self := d.Self
	if self == "" {
		self = OrchestratorName
	}

	var units []Unit
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, UnitSuffix) || name == self {
			continue
		}

		unit := Unit{
			Name:   strings.TrimSuffix(name, UnitSuffix),
			Script: filepath.Join(d.Dir, name),
		}
		// Header metadata is optional decoration, parse errors are not fatal
		if meta, err := parseHeader(unit.Script); err == nil {
			unit.DisplayName = meta.displayName
			unit.Description = meta.description
		}
		if unit.DisplayName == "" {
			unit.DisplayName = unit.Name
		}
		units = append(units, unit)
	}

	sort.Slice(units, func(i, j int) bool {
		return filepath.Base(units[i].Script) < filepath.Base(units[j].Script)
	})

	return units, nil
}

// Header comment patterns, shared with the scaffolded wrapper template.
var (
	headerNameRe = regexp.MustCompile(`^#\s*(\S+)\s+[Ii]nstaller`)
	headerDescRe = regexp.MustCompile(`^#\s+([A-Z].+)$`)
	separatorRe  = regexp.MustCompile(`^#[=\-]*$|^#\s*$`)
)

type headerMeta struct {
	displayName string
	description string
}

// parseHeader extracts the display name and description from a script's
// comment banner.
func parseHeader(path string) (headerMeta, error) {
	file, err := os.Open(path)
	if err != nil {
		return headerMeta{}, err
	}
	defer file.Close()

	var meta headerMeta
	scanner := bufio.NewScanner(file)
	lineNum := 0
	lookingForDesc := false

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if matches := headerNameRe.FindStringSubmatch(line); len(matches) > 1 {
			meta.displayName = matches[1]
			lookingForDesc = true
			continue
		}

		if lookingForDesc {
			if separatorRe.MatchString(line) {
				continue
			}
			if matches := headerDescRe.FindStringSubmatch(line); len(matches) > 1 {
				desc := strings.TrimSpace(matches[1])
				// Skip URL lines when looking for a description
				if !strings.HasPrefix(desc, "http") {
					meta.description = desc
					lookingForDesc = false
				}
			} else {
				lookingForDesc = false
			}
		}

		// The banner sits in the first few lines
		if lineNum > 20 {
			break
		}
	}

	return meta, scanner.Err()
}
