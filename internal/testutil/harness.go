// Package testutil provides test infrastructure for coauthor.
//
// It offers a TestHarness for managing an isolated environment (temp dir,
// config home, environment variables) and a GitHubStub that stands in for
// the GitHub users endpoint while counting the requests it receives.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// TestHarness - Test environment management
// =============================================================================

// TestHarness manages the test environment.
type TestHarness struct {
	T       *testing.T
	TempDir string

	// ConfigHome is exported as XDG_CONFIG_HOME so a developer's own
	// configuration never leaks into a test run.
	ConfigHome string
}

// NewHarness creates a new test harness. Environment changes are undone by
// the testing package when the test ends.
func NewHarness(t *testing.T) *TestHarness {
	t.Helper()

	tempDir := t.TempDir()
	h := &TestHarness{
		T:          t,
		TempDir:    tempDir,
		ConfigHome: filepath.Join(tempDir, "config"),
	}

	t.Setenv("XDG_CONFIG_HOME", h.ConfigHome)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	t.Logf("[harness] temp_dir=%s", tempDir)
	return h
}

// WriteFile writes content to a file in the temp directory and returns its path.
func (h *TestHarness) WriteFile(relPath, content string) string {
	h.T.Helper()

	fullPath := filepath.Join(h.TempDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0700); err != nil {
		h.T.Fatalf("Failed to create dir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0600); err != nil {
		h.T.Fatalf("Failed to write file %s: %v", relPath, err)
	}
	return fullPath
}

// WriteConfig writes the default config file (config.yaml under ConfigHome).
func (h *TestHarness) WriteConfig(content string) string {
	h.T.Helper()
	rel, err := filepath.Rel(h.TempDir, filepath.Join(h.ConfigHome, "coauthor", "config.yaml"))
	if err != nil {
		h.T.Fatalf("config path: %v", err)
	}
	return h.WriteFile(rel, content)
}

// Env returns a lookup over a fixed set of variables, for code that takes
// its environment as a parameter.
func Env(pairs ...string) func(string) (string, bool) {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("testutil.Env: odd number of arguments (%d)", len(pairs)))
	}
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
