package dupfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent"))
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, DefaultAlgorithm, cfg.GetFingerprintConfig().Algorithm)
	assert.Equal(t, "8K", cfg.GetScanConfig().ReadBuffer)

	output := cfg.GetOutputConfig()
	assert.Equal(t, "auto", output.Color)
	assert.False(t, output.Verbose)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := `[fingerprint]
algorithm = md5

[scan]
read_buffer = 64K

[output]
color = never
verbose = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "md5", cfg.GetFingerprintConfig().Algorithm)
	assert.Equal(t, "64K", cfg.GetScanConfig().ReadBuffer)

	output := cfg.GetOutputConfig()
	assert.Equal(t, "never", output.Color)
	assert.True(t, output.Verbose)
}

func TestLoadConfigPartialSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("[output]\ncolor = always\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "always", cfg.GetOutputConfig().Color)
	assert.Equal(t, DefaultAlgorithm, cfg.GetFingerprintConfig().Algorithm)
	assert.Equal(t, "8K", cfg.GetScanConfig().ReadBuffer)
}

func TestValidateColorMode(t *testing.T) {
	for _, mode := range []string{"auto", "always", "never", "Auto", "NEVER"} {
		assert.NoError(t, ValidateColorMode(mode), mode)
	}
	assert.Error(t, ValidateColorMode("sometimes"))
	assert.Error(t, ValidateColorMode(""))
}
