package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runMCA(t, binaryPath, home, "submit-command", "--wait", "/time set day")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "output: executed: /time set day")

	stdout, stderr, err = runMCA(t, binaryPath, home, "ask", "where is the nearest village")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "I need your current X coordinate. What is it?\n", stdout)

	stdout, stderr, err = runMCA(t, binaryPath, home, "list-jobs", "--limit", "5")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "jobs: 1")
	assert.Regexp(t, regexp.MustCompile(`\[ok\]\s+/time set day`), stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "mca-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mca")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build mca binary: %s", string(output))
	return binaryPath
}

func runMCA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
