//go:build integration
// +build integration

package integration

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "positive input", args: []string{"add", "1", "2"}, want: "3"},
		{name: "boundary around zero", args: []string{"add", "-1", "1"}, want: "0"},
		{name: "identity", args: []string{"add", "0", "42"}, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := sharedFramework.RunCommand(tt.args...)
			require.NoError(t, err, "stderr: %s", stderr)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestAddCommandOverflow(t *testing.T) {
	t.Run("checked policy fails", func(t *testing.T) {
		_, stderr, err := sharedFramework.RunCommand("add", "9223372036854775807", "1")
		require.Error(t, err)
		assert.Contains(t, stderr, "overflow")
	})

	t.Run("wrap policy wraps", func(t *testing.T) {
		stdout, stderr, err := sharedFramework.RunCommand("--policy", "wrap", "add", "9223372036854775807", "1")
		require.NoError(t, err, "stderr: %s", stderr)
		assert.Equal(t, "-9223372036854775808", strings.TrimSpace(stdout))
	})

	t.Run("saturate policy clamps", func(t *testing.T) {
		stdout, stderr, err := sharedFramework.RunCommand("--policy", "saturate", "add", "9223372036854775807", "1")
		require.NoError(t, err, "stderr: %s", stderr)
		assert.Equal(t, "9223372036854775807", strings.TrimSpace(stdout))
	})
}

func TestAddCommandRejectsBadOperands(t *testing.T) {
	_, stderr, err := sharedFramework.RunCommand("add", "one", "2")
	require.Error(t, err)
	assert.Contains(t, stderr, "Failed to parse")
}

func TestCheckCommand(t *testing.T) {
	stdout, stderr, err := sharedFramework.RunCommand("check")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "PASS  AddTest.HandlesPositiveInput")
	assert.Contains(t, stdout, "0 failed")
	assert.NotContains(t, stdout, "FAIL")
}

func TestCheckCommandWithCaseFile(t *testing.T) {
	t.Run("passing cases", func(t *testing.T) {
		path, err := sharedFramework.CreateCaseFile("passing.yaml", `
cases:
  - name: FileTest.SmallSum
    a: 20
    b: 22
    expected: 42
`)
		require.NoError(t, err)

		stdout, stderr, err := sharedFramework.RunCommand("check", path)
		require.NoError(t, err, "stderr: %s", stderr)
		assert.Contains(t, stdout, "PASS  FileTest.SmallSum")
	})

	t.Run("failing case sets exit code", func(t *testing.T) {
		path, err := sharedFramework.CreateCaseFile("failing.yaml", `
cases:
  - name: FileTest.WrongSum
    a: 1
    b: 1
    expected: 3
`)
		require.NoError(t, err)

		stdout, _, err := sharedFramework.RunCommand("check", path)
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Contains(t, stdout, "FAIL  FileTest.WrongSum")
		assert.Contains(t, stdout, "expected 3, got 2")
	})

	t.Run("malformed case file", func(t *testing.T) {
		path, err := sharedFramework.CreateCaseFile("broken.yaml", "cases: [oops\n")
		require.NoError(t, err)

		_, stderr, err := sharedFramework.RunCommand("check", path)
		require.Error(t, err)
		assert.Contains(t, stderr, "Failed to load case file")
	})
}

func TestCheckCommandWithConfig(t *testing.T) {
	configPath, err := sharedFramework.CreateTestConfig("checked", false)
	require.NoError(t, err)

	stdout, stderr, err := sharedFramework.RunCommand("--config", configPath, "check")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "0 failed")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := sharedFramework.RunCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sumcheck")
}
