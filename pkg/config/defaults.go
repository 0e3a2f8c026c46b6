package config

// Default values applied when neither the config file nor the environment
// provides a setting.
const (
	// DefaultOutdatedCommand asks uv for the outdated packages of the
	// current environment in JSON form.
	DefaultOutdatedCommand = "uv pip list --outdated --format json"

	// DefaultTimeoutSeconds bounds the outdated command runtime.
	DefaultTimeoutSeconds = 120

	// DefaultServerPort is the port the web service listens on.
	DefaultServerPort = "8080"

	// ConfigFileName is the per-project config file looked up in the
	// working directory.
	ConfigFileName = ".ruffyt.yml"
)

// defaultConfig returns a Config populated with built-in defaults.
//
// Returns:
//   - *Config: Config with default command, timeout, and server port
func defaultConfig() *Config {
	return &Config{
		OutdatedCommand: DefaultOutdatedCommand,
		TimeoutSeconds:  DefaultTimeoutSeconds,
		ServerPort:      DefaultServerPort,
	}
}
