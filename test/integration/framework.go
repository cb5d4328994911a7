//go:build integration
// +build integration

package integration

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestFramework provides end-to-end testing infrastructure: it builds the
// sumcheck binary once and runs it as a subprocess.
type TestFramework struct {
	t          *testing.T
	logger     *logrus.Logger
	tempDir    string
	binaryPath string
}

// NewTestFramework creates a new end-to-end test framework
func NewTestFramework(t *testing.T) *TestFramework {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(io.Discard) // Suppress logs during tests unless needed

	return &TestFramework{
		t:      t,
		logger: logger,
	}
}

// Setup initializes the test environment
func (tf *TestFramework) Setup() error {
	tf.t.Helper()

	// Create temporary directory for test files
	tempDir, err := os.MkdirTemp("", "sumcheck-test-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	tf.tempDir = tempDir

	// Build the binary for testing
	if err := tf.buildBinary(); err != nil {
		return fmt.Errorf("failed to build binary: %w", err)
	}

	return nil
}

// Cleanup tears down the test environment
func (tf *TestFramework) Cleanup() {
	tf.t.Helper()

	if tf.tempDir != "" {
		os.RemoveAll(tf.tempDir)
	}
}

// buildBinary compiles the sumcheck binary for testing
func (tf *TestFramework) buildBinary() error {
	projectRoot, err := tf.findProjectRoot()
	if err != nil {
		return err
	}

	// Use the pre-built binary from the build directory when present
	preBuildBinaryPath := filepath.Join(projectRoot, "build", "sumcheck")

	if _, err := os.Stat(preBuildBinaryPath); err == nil {
		tf.binaryPath = preBuildBinaryPath
		tf.t.Logf("Using pre-built binary: %s", tf.binaryPath)
		return nil
	}

	binaryPath := filepath.Join(tf.tempDir, "sumcheck")
	tf.binaryPath = binaryPath

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sumcheck")
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build binary: %w", err)
	}

	return nil
}

// findProjectRoot finds the project root directory
func (tf *TestFramework) findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod)")
}

// CreateTestConfig creates a test configuration file
func (tf *TestFramework) CreateTestConfig(policy string, failFast bool) (string, error) {
	configContent := fmt.Sprintf(`[arith]
policy = "%s"

[harness]
fail_fast = %t

[logging]
level = "debug"
format = "text"
output = "stderr"
`, policy, failFast)

	configFile := filepath.Join(tf.tempDir, "config.toml")
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

// CreateCaseFile writes a YAML case file into the temp directory
func (tf *TestFramework) CreateCaseFile(name, content string) (string, error) {
	path := filepath.Join(tf.tempDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write case file: %w", err)
	}
	return path, nil
}

// RunCommand executes the sumcheck binary with given arguments
func (tf *TestFramework) RunCommand(args ...string) (string, string, error) {
	cmd := exec.Command(tf.binaryPath, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// GetTempDir returns the temporary directory for the test
func (tf *TestFramework) GetTempDir() string {
	return tf.tempDir
}

// GetBinaryPath returns the path to the built binary
func (tf *TestFramework) GetBinaryPath() string {
	return tf.binaryPath
}
