package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockExecutor is a mock command executor for testing.
type MockExecutor struct {
	LookPathFunc       func(file string) (string, error)
	RunFunc            func(name string, args ...string) (string, error)
	RunInteractiveFunc func(dir string, name string, args ...string) error
	CombinedOutputFunc func(name string, args ...string) ([]byte, error)
	FileExistsFunc     func(path string) bool
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockExecutor) Run(name string, args ...string) (string, error) {
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "1.0.0", nil
}

func (m *MockExecutor) RunInteractive(dir string, name string, args ...string) error {
	if m.RunInteractiveFunc != nil {
		return m.RunInteractiveFunc(dir, name, args...)
	}
	return nil
}

func (m *MockExecutor) CombinedOutput(name string, args ...string) ([]byte, error) {
	if m.CombinedOutputFunc != nil {
		return m.CombinedOutputFunc(name, args...)
	}
	return []byte("ok"), nil
}

func (m *MockExecutor) FileExists(path string) bool {
	if m.FileExistsFunc != nil {
		return m.FileExistsFunc(path)
	}
	return true
}

func TestCheckPacman_Installed(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return " .--.                  Pacman v6.1.0 - libalpm v14.0.0", nil
		},
	}

	check := CheckPacman(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "6.1.0", check.Message)
}

func TestCheckPacman_Missing(t *testing.T) {
	mockExec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	check := CheckPacman(mockExec)

	assert.Equal(t, StatusMissing, check.Status)
	assert.Equal(t, "not installed", check.Message)
}

func TestCheckSudo_Installed(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "Sudo version 1.9.15p5\nSudoers policy plugin version 1.9.15p5", nil
		},
	}

	check := CheckSudo(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "1.9.15p5", check.Message)
}

func TestCheckGit_Installed(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "git version 2.45.2", nil
		},
	}

	check := CheckGit(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "2.45.2", check.Message)
}

func TestCheckMakepkg_Installed(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "makepkg (pacman) 6.1.0", nil
		},
	}

	check := CheckMakepkg(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "6.1.0", check.Message)
}

func TestCheckTool_VersionCheckFails(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "", errors.New("exit status 1")
		},
	}

	check := CheckGit(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "installed (version unknown)", check.Message)
}

func TestCheckArch(t *testing.T) {
	check := CheckArch(&MockExecutor{})
	assert.Equal(t, StatusOK, check.Status)

	mockExec := &MockExecutor{
		FileExistsFunc: func(path string) bool { return false },
	}
	check = CheckArch(mockExec)
	assert.Equal(t, StatusWarning, check.Status)
}

func TestCheckAurHelper_Found(t *testing.T) {
	mockExec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "yay v12.3.5 - libalpm v14.0.0", nil
		},
	}

	check := CheckAurHelper(mockExec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "yay 12.3.5", check.Message)
}

func TestCheckAurHelper_Missing(t *testing.T) {
	mockExec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	check := CheckAurHelper(mockExec)

	assert.Equal(t, StatusMissing, check.Status)
	assert.Equal(t, "neither yay nor paru found", check.Message)
	require.NotNil(t, check.FixCommand)
	assert.Contains(t, check.FixCommand.Command, "aur.archlinux.org/yay.git")
}

func TestCheckScriptsDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a-install", "b-install"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("#!/usr/bin/env bash\n"), 0o755)
		require.NoError(t, err)
	}

	check := CheckScriptsDir(dir)
	assert.Equal(t, StatusOK, check.Status)
	assert.Contains(t, check.Message, "2 install scripts")
}

func TestCheckScriptsDir_Empty(t *testing.T) {
	check := CheckScriptsDir(t.TempDir())
	assert.Equal(t, StatusWarning, check.Status)
}

func TestCheckScriptsDir_Missing(t *testing.T) {
	check := CheckScriptsDir(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, StatusMissing, check.Status)
	require.NotNil(t, check.FixCommand)
	assert.Equal(t, "acli init", check.FixCommand.Command)
}

func TestCheckScriptsDir_Unset(t *testing.T) {
	check := CheckScriptsDir("")
	assert.Equal(t, StatusWarning, check.Status)
}

func TestChecker_CheckAll(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{})
	groups := checker.CheckAll()

	require.Len(t, groups, 3)
	assert.Equal(t, GroupSystem, groups[0].ID)
	assert.Equal(t, GroupAUR, groups[1].ID)
	assert.Equal(t, GroupScripts, groups[2].ID)

	summary := checker.GetSummary(groups)
	assert.Equal(t, 7, summary.Total)
	assert.Zero(t, summary.Missing)
	// scripts dir is unset, reported as a warning
	assert.Equal(t, 1, summary.Warnings)
	assert.False(t, checker.HasIssues(groups))
}

func TestChecker_CheckAllAsync(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{})

	sync := checker.CheckAll()
	async := checker.CheckAllAsync()

	require.Len(t, async, len(sync))
	for i := range sync {
		assert.Equal(t, sync[i].ID, async[i].ID)
		assert.Len(t, async[i].Checks, len(sync[i].Checks))
	}
}

func TestChecker_HasIssues(t *testing.T) {
	mockExec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			if file == "git" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + file, nil
		},
	}

	checker := NewCheckerWithExecutor(mockExec)
	groups := checker.CheckAll()

	assert.True(t, checker.HasIssues(groups))
	summary := checker.GetSummary(groups)
	assert.Equal(t, 1, summary.Missing)
}

func TestChecker_ScriptsDirWired(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "kitty-install"), []byte("#!/usr/bin/env bash\n"), 0o755)
	require.NoError(t, err)

	checker := NewCheckerWithExecutor(&MockExecutor{})
	checker.SetScriptsDir(dir)

	check := checker.GetCheck(IDScriptsDir)
	assert.Equal(t, StatusOK, check.Status)
}

func TestChecker_CheckGroup_Unknown(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{})
	group := checker.CheckGroup("bogus")

	assert.Equal(t, "bogus", group.ID)
	assert.Equal(t, "Unknown", group.Name)
	assert.Empty(t, group.Checks)
}

func TestChecker_RunCheck_Unknown(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{})
	check := checker.GetCheck("bogus")

	assert.Equal(t, StatusError, check.Status)
	assert.Equal(t, "unknown check", check.Message)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"semver", "tool v1.2.3", "1.2.3"},
		{"two part", "tool 1.2", "1.2"},
		{"with suffix", "tool v1.2.3-rc1", "1.2.3-rc1"},
		{"no version", "no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractVersion(tt.output, nil))
		})
	}
}

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "warning", StatusWarning.String())
	assert.Equal(t, "unknown", CheckStatus(42).String())
}
