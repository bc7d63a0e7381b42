package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/consts"
	"github.com/stretchr/testify/require"
)

// RequireValidProject asserts that a project was initialized in projectDir and returns
// its configuration.
func RequireValidProject(t *testing.T, projectDir string) *config.Config {
	t.Helper()

	path := filepath.Join(projectDir, consts.ConfigFile)
	require.FileExists(t, path, "%s should exist", consts.ConfigFile)

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(projectDir, cfg.Plans), "plans directory should exist")

	return cfg
}

// RequireFileExists asserts that a file exists and optionally checks its content
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		for _, check := range checks {
			check(string(content))
		}
	}
}

// RequireFileContains returns a check function that verifies file contains text
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireFileEquals returns a check function that verifies the full file content
func RequireFileEquals(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Equal(t, expected, content)
	}
}

// WritePlan writes a plan file named name under dir, creating parent directories.
func WritePlan(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}
