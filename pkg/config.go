package dupfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

// Config represents the optional on-disk defaults. A missing config
// file is not an error; every accessor falls back to built-in defaults.
type Config struct {
	configPath string
	ini        *ini.File
}

// FingerprintConfig represents fingerprint algorithm configuration
type FingerprintConfig struct {
	Algorithm string // Default fingerprint algorithm
}

// ScanConfig represents scan performance configuration
type ScanConfig struct {
	ReadBuffer string // Chunk size for hashing and comparison (default: "8K")
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Color   string // Color mode: auto, always, never
	Verbose bool   // Default verbosity
}

// DefaultConfigPath returns the per-user config location,
// ~/.dupfinder/config. The empty string is returned when the home
// directory cannot be resolved; LoadConfig treats that as "no config".
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dupfinder", "config")
}

// LoadConfig loads configuration from the given path, or from
// DefaultConfigPath when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := &Config{configPath: path}

	if path == "" {
		cfg.ini = ini.Empty()
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile

	return cfg, nil
}

// GetFingerprintConfig returns the fingerprint configuration
func (c *Config) GetFingerprintConfig() *FingerprintConfig {
	fingerprintConfig := &FingerprintConfig{
		Algorithm: DefaultAlgorithm, // fallback default
	}

	if c.ini.HasSection("fingerprint") {
		section := c.ini.Section("fingerprint")
		if section.HasKey("algorithm") {
			fingerprintConfig.Algorithm = section.Key("algorithm").String()
		}
	}

	return fingerprintConfig
}

// GetScanConfig returns the scan configuration
func (c *Config) GetScanConfig() *ScanConfig {
	scanConfig := &ScanConfig{
		ReadBuffer: "8K", // fallback default
	}

	if c.ini.HasSection("scan") {
		section := c.ini.Section("scan")
		if section.HasKey("read_buffer") {
			if bufferSize := section.Key("read_buffer").String(); bufferSize != "" {
				scanConfig.ReadBuffer = bufferSize
			}
		}
	}

	return scanConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		Color:   "auto", // fallback default
		Verbose: false,  // fallback default
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("color") {
			outputConfig.Color = section.Key("color").String()
		}
		if section.HasKey("verbose") {
			if verbose, err := section.Key("verbose").Bool(); err == nil {
				outputConfig.Verbose = verbose
			}
		}
	}

	return outputConfig
}

// ValidateColorMode validates that a color mode is supported
func ValidateColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("unsupported color mode: %s (supported: auto, always, never)", mode)
	}
}
