package doctor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFixer(t *testing.T) {
	fixer := NewFixer()
	assert.NotNil(t, fixer)
	assert.NotNil(t, fixer.executor)
}

func TestNewFixerWithExecutor(t *testing.T) {
	mockExec := &MockExecutor{}
	fixer := NewFixerWithExecutor(mockExec)
	assert.NotNil(t, fixer)
	assert.Equal(t, mockExec, fixer.executor)
}

func TestFixer_RunFix_Success(t *testing.T) {
	mockExec := &MockExecutor{
		CombinedOutputFunc: func(name string, args ...string) ([]byte, error) {
			assert.Equal(t, "sh", name)
			assert.Equal(t, []string{"-c", "echo hello"}, args)
			return []byte("hello\n"), nil
		},
	}

	fixer := NewFixerWithExecutor(mockExec)
	fix := &FixCommand{
		Command:     "echo hello",
		Description: "Test command",
	}

	err := fixer.RunFix(fix)
	assert.NoError(t, err)
}

func TestFixer_RunFix_Failure(t *testing.T) {
	mockExec := &MockExecutor{
		CombinedOutputFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("command not found"), errors.New("exit status 127")
		},
	}

	fixer := NewFixerWithExecutor(mockExec)
	fix := &FixCommand{
		Command:     "nonexistent-command",
		Description: "Test command",
	}

	err := fixer.RunFix(fix)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fix failed")
	assert.Contains(t, err.Error(), "command not found")
}

func TestFixer_RunFix_NilFix(t *testing.T) {
	fixer := NewFixer()

	err := fixer.RunFix(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no fix command available")
}

func TestGetFixCommand(t *testing.T) {
	tests := []struct {
		checkID     string
		expectNil   bool
		expectSudo  bool
		containsCmd string
	}{
		{IDSudo, false, true, "pacman -S"},
		{IDGit, false, true, "pacman -S --noconfirm git"},
		{IDMakepkg, false, true, "base-devel"},
		{IDAurHelper, false, true, "makepkg -si"},
		{IDScriptsDir, false, false, "acli init"},

		// No automated fix
		{IDPacman, true, false, ""},
		{IDArch, true, false, ""},
		{"unknown-tool", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.checkID, func(t *testing.T) {
			fix := GetFixCommand(tt.checkID)

			if tt.expectNil {
				assert.Nil(t, fix)
			} else {
				assert.NotNil(t, fix)
				assert.Equal(t, tt.expectSudo, fix.Sudo)
				assert.Contains(t, fix.Command, tt.containsCmd)
				assert.NotEmpty(t, fix.Description)
			}
		})
	}
}
