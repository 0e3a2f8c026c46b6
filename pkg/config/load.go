package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ruffyt/ruffyt/pkg/verbose"
)

// Environment variable names recognized by Load.
const (
	EnvManifest        = "RUFFYT_MANIFEST"
	EnvOutdatedCommand = "RUFFYT_OUTDATED_COMMAND"
	EnvTimeoutSeconds  = "RUFFYT_TIMEOUT_SECONDS"
	EnvServerPort      = "RUFFYT_PORT"
)

// Load resolves the configuration for the given working directory.
//
// It performs the following operations:
//   - Step 1: Start from built-in defaults
//   - Step 2: Merge .ruffyt.yml from the working directory if present
//   - Step 3: Seed the environment from a .env file if present
//   - Step 4: Apply environment variable overrides
//   - Step 5: Validate the result
//
// If configPath is non-empty that file is loaded instead of the working
// directory lookup, and a missing file is an error rather than a fallback.
//
// Parameters:
//   - configPath: Explicit config file path, or empty for auto-discovery
//   - workDir: Working directory the command operates in
//
// Returns:
//   - *Config: The resolved configuration
//   - error: Any error encountered during loading or validation
func Load(configPath, workDir string) (*Config, error) {
	cfg := defaultConfig()

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		if err := mergeFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		localConfig := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			if err := mergeFile(cfg, localConfig); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// A .env file is optional; ignore a missing one.
	_ = godotenv.Load(filepath.Join(workDir, ".env"))

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.WorkingDir = workDir
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFile overlays values from a YAML config file onto cfg.
//
// Only fields present in the file replace existing values; absent fields
// keep their current (default) values because the file is decoded into
// the same struct.
//
// Parameters:
//   - cfg: Config to merge into
//   - path: YAML file path
//
// Returns:
//   - error: Read or decode failure
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg fields from recognized environment variables.
//
// Parameters:
//   - cfg: Config to override
//
// Returns:
//   - error: When RUFFYT_TIMEOUT_SECONDS is not a valid integer
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvManifest); v != "" {
		cfg.ManifestPath = v
	}
	if v := os.Getenv(EnvOutdatedCommand); v != "" {
		cfg.OutdatedCommand = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvTimeoutSeconds, v, err)
		}
		cfg.TimeoutSeconds = seconds
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		cfg.ServerPort = v
	}
	return nil
}

// Validate checks the configuration for values the commands cannot work with.
//
// Returns:
//   - error: Description of the first invalid setting, or nil
func (c *Config) Validate() error {
	if c.OutdatedCommand == "" {
		return fmt.Errorf("outdated_command must not be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	if c.ServerPort != "" {
		if port, err := strconv.Atoi(c.ServerPort); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("server_port must be a port number, got %q", c.ServerPort)
		}
	}
	return nil
}
