// Package scaffold writes starter install scripts for a new project.
package scaffold

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/apps"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/runner"
)

// unitTemplate is the per-app wrapper script with variable placeholders.
// Variables like ${APP_NAME} are substituted at scaffold time.
//
//go:embed templates/unit-install.template.sh
var unitTemplate string

// orchestratorTemplate is the install-all entry point, written verbatim.
//
//go:embed templates/install-all.template.sh
var orchestratorTemplate string

// TemplateVars holds all variables for template substitution.
type TemplateVars struct {
	APP_NAME        string
	APP_DISPLAY     string
	APP_DESCRIPTION string
}

// Options controls scaffolding behavior.
type Options struct {
	Force bool // overwrite existing scripts
}

// Result reports what Init wrote.
type Result struct {
	Created []string
	Skipped []string
}

// Init scaffolds the scripts directory: the install-all entry point plus
// one wrapper per selected app. Existing files are left alone unless
// Force is set.
func Init(dir string, selection []apps.App, opts Options) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	result := &Result{}

	orchestratorPath := filepath.Join(dir, runner.OrchestratorName)
	if fileExists(orchestratorPath) && !opts.Force {
		result.Skipped = append(result.Skipped, orchestratorPath)
	} else {
		if err := os.WriteFile(orchestratorPath, []byte(orchestratorTemplate), 0755); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", orchestratorPath, err)
		}
		result.Created = append(result.Created, orchestratorPath)
	}

	for _, app := range selection {
		path := filepath.Join(dir, UnitFileName(app.Name))
		if fileExists(path) && !opts.Force {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if err := WriteUnit(dir, app); err != nil {
			return nil, err
		}
		result.Created = append(result.Created, path)
	}

	return result, nil
}

// UnitFileName returns the wrapper filename for an app name.
func UnitFileName(name string) string {
	return name + runner.UnitSuffix
}

// WriteUnit renders the wrapper script for app and writes it into dir,
// overwriting any existing file.
func WriteUnit(dir string, app apps.App) error {
	vars := &TemplateVars{
		APP_NAME:        app.Name,
		APP_DISPLAY:     app.DisplayName(),
		APP_DESCRIPTION: app.Description,
	}
	if vars.APP_DESCRIPTION == "" {
		vars.APP_DESCRIPTION = "Installs and updates " + vars.APP_DISPLAY
	}

	output := substituteVars(unitTemplate, vars)

	path := filepath.Join(dir, UnitFileName(app.Name))
	if err := os.WriteFile(path, []byte(output), 0755); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// substituteVars replaces ${VARIABLE} placeholders with values.
func substituteVars(template string, vars *TemplateVars) string {
	varMap := map[string]string{
		"APP_NAME":        vars.APP_NAME,
		"APP_DISPLAY":     vars.APP_DISPLAY,
		"APP_DESCRIPTION": vars.APP_DESCRIPTION,
	}

	result := template

	// Replace ${VARIABLE} format
	for name, value := range varMap {
		placeholder := "${" + name + "}"
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Also replace $VARIABLE format (without braces) for inline usage
	for name, value := range varMap {
		re := regexp.MustCompile(`\$` + name + `\b`)
		result = re.ReplaceAllString(result, value)
	}

	return result
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
