// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> profile resolution -> equivalence engine ->
// output formatting. The engine itself has exhaustive unit tests in
// internal/equiv; these tests pin the CLI surface on top of it.
//
// Every invocation passes --no-config (via the test env) so a developer's
// real ~/.pathnorm/config.yaml cannot leak into test profiles; config-file
// behaviour is tested explicitly with files written into the temp dir.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the pathnorm binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "pathnorm-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "pathnorm"
		if os.PathSeparator == '\\' {
			binaryName = "pathnorm.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t         *testing.T
	dir       string
	binary    string
	useConfig bool
}

// newTestEnv creates a temporary working directory for one test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), binary: buildBinary(t)}
}

// writeConfig writes a local .pathnorm.yaml and switches the env to use it.
func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	path := filepath.Join(e.dir, ".pathnorm.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write config: %v", err)
	}
	e.useConfig = true
}

// run executes pathnorm with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("pathnorm %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes pathnorm and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	if !e.useConfig {
		args = append([]string{"--no-config"}, args...)
	}
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdin executes pathnorm with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()

	if !e.useConfig {
		args = append([]string{"--no-config"}, args...)
	}
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("pathnorm %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
