package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitrot.dev/pkg/bitrot/internal/domain"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "bitrot", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Error model:")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, fileAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, generator)
	assert.NotNil(t, injector)
	assert.NotNil(t, newWorkflow(newRootCmd()))
}

func TestRootCmd_SurfacesConfigError(t *testing.T) {
	configLoadErr = errors.New("read config bitrot.yaml: yaml: line 1: did not find expected node content")
	t.Cleanup(func() { configLoadErr = nil })

	path := filepath.Join(t.TempDir(), "original.bin")

	_, err := executeCommand(t, newGenerateCmd(), "generate", path, "--size", "16")
	require.Error(t, err)
	assert.ErrorIs(t, err, configLoadErr)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

// TestExecute_ExitCodes re-runs the test binary with real command lines so
// the os.Exit in Execute can be observed.
func TestExecute_ExitCodes(t *testing.T) {
	const argsEnv = "TEST_BITROT_EXECUTE_ARGS"

	if args := os.Getenv(argsEnv); args != "" {
		rootCmd.SetArgs(strings.Split(args, "\x1f"))
		Execute()

		return
	}

	root := t.TempDir()
	src := filepath.Join(root, "src.bin")
	require.NoError(t, os.WriteFile(src, make([]byte, 64), 0o600))

	logFile := filepath.Join(root, "bitrot.log")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"generate", []string{"generate", filepath.Join(root, "g.bin"), "--size", "64"}, 0, "Generated random binary file"},
		{"inject", []string{"inject", src, filepath.Join(root, "d.bin"), "--random=3"}, 0, "Added errors to binary file"},
		{"zero size", []string{"generate", filepath.Join(root, "z.bin"), "--size", "0"}, 1, domain.ErrInvalidSize.Error()},
		{"invalid spec", []string{"inject", src, filepath.Join(root, "x.bin"), "--random=-1"}, 1, domain.ErrInvalidSpec.Error()},
		{"missing source", []string{"inject", filepath.Join(root, "none.bin"), filepath.Join(root, "y.bin")}, 1, domain.ErrSourceAccess.Error()},
		{"same file", []string{"inject", src, src, "--random=3"}, 1, domain.ErrPathConflict.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--"+logFileFlagName, logFile)

			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ExitCodes$")
			cmd.Env = append(os.Environ(), argsEnv+"="+strings.Join(args, "\x1f"))
			output, err := cmd.CombinedOutput()

			assert.Contains(t, string(output), tt.wantOut)

			if tt.wantCode == 0 {
				require.NoError(t, err, "output: %s", output)
				return
			}

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr, "output: %s", output)
			assert.Equal(t, tt.wantCode, exitErr.ExitCode())
		})
	}

	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 64), got, "source survives every run")
}
