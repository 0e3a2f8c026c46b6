// Package config handles configuration loading and validation for ruffyt.
// Configuration is resolved from a YAML file (.ruffyt.yml in the working
// directory), environment variables (optionally seeded from a .env file),
// and built-in defaults, in that order of increasing precedence for the
// environment and decreasing for the file.
package config

// Config holds all runtime configuration for ruffyt commands.
//
// Everything the updater needs from the process environment (working
// directory, tool command) is carried here explicitly so the operation
// stays testable with an injected manifest path and a stubbed tool.
//
// Fields:
//   - ManifestPath: Path to the manifest file, relative paths resolve
//     against WorkingDir; empty means discover pyproject.toml upwards
//   - OutdatedCommand: Command line that prints the outdated report as JSON
//   - TimeoutSeconds: Maximum runtime for the outdated command (0 = none)
//   - WorkingDir: Directory the updater operates in
//   - ServerPort: TCP port for the serve command
type Config struct {
	ManifestPath    string `yaml:"manifest"`
	OutdatedCommand string `yaml:"outdated_command"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	WorkingDir      string `yaml:"-"`
	ServerPort      string `yaml:"server_port"`
}
