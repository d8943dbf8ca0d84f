package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults", func(t *testing.T) {
		// Execute
		conf, err := Load("")

		// Check
		require.NoError(t, err, "loads config")
		assert.Equal(t, "htstat", conf.AppName, "app name")
		assert.Equal(t, "INFO", conf.LogLevel, "log level")
		assert.Equal(t, 1000, conf.Size, "size")
		assert.Equal(t, 10000, conf.Keys, "keys")
		assert.Equal(t, []string{"oneatatime", "xxhash", "xxh3", "murmur3"}, conf.Algorithms, "algorithms")
		assert.Equal(t, "external", conf.Storage, "storage")
		assert.False(t, conf.CaseSensitive, "case insensitive")
	})

	t.Run("reads config file", func(t *testing.T) {
		// Prepare
		file := filepath.Join(t.TempDir(), "htstat.yaml")
		content := "size: 97\nsorted: true\nalgorithms:\n  - murmur3\nstorage: in-table\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0644), "writes config file")

		// Execute
		conf, err := Load(file)

		// Check
		require.NoError(t, err, "loads config")
		assert.Equal(t, 97, conf.Size, "size from file")
		assert.True(t, conf.Sorted, "sorted from file")
		assert.Equal(t, []string{"murmur3"}, conf.Algorithms, "algorithms from file")
		assert.Equal(t, "in-table", conf.Storage, "storage from file")
		assert.Equal(t, 10000, conf.Keys, "default kept")
	})

	t.Run("environment overrides config file", func(t *testing.T) {
		// Prepare
		file := filepath.Join(t.TempDir(), "htstat.yaml")
		require.NoError(t, os.WriteFile(file, []byte("size: 97\n"), 0644), "writes config file")
		t.Setenv("HTSTAT_SIZE", "211")
		t.Setenv("HTSTAT_CASE_SENSITIVE", "true")
		t.Setenv("HTSTAT_ALGORITHMS", "xxhash,xxh3")

		// Execute
		conf, err := Load(file)

		// Check
		require.NoError(t, err, "loads config")
		assert.Equal(t, 211, conf.Size, "size from environment")
		assert.True(t, conf.CaseSensitive, "case sensitive from environment")
		assert.Equal(t, []string{"xxhash", "xxh3"}, conf.Algorithms, "algorithms from environment")
	})

	t.Run("fails on missing config file", func(t *testing.T) {
		// Execute
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// Check
		assert.Error(t, err, "missing file")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		// Prepare
		envs := map[string]string{
			"HTSTAT_KEYS":       "-1",
			"HTSTAT_KEY_LENGTH": "0",
			"HTSTAT_STORAGE":    "disk",
		}

		for name, value := range envs {
			t.Run(name, func(t *testing.T) {
				t.Setenv(name, value)

				// Execute
				_, err := Load("")

				// Check
				assert.Error(t, err, "invalid %s", name)
			})
		}
	})
}
