// Package config provides YAML configuration loading for the serviced
// daemon. Everything here can also be set on the command line; flags win.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load when the file omits a value.
const (
	DefaultSocketAddress     = "unix:///var/run/serviced.sock"
	DefaultDispatcherAddress = "unix:///var/run/dispatcher.sock"
	DefaultLogPath           = "/var/log/serviced.log"
)

// Config is the top-level configuration for serviced.
type Config struct {
	// SocketAddress is the control socket the daemon listens on, as a
	// unix:// URL. Defaults to DefaultSocketAddress.
	SocketAddress string `yaml:"socket_address"`

	// DispatcherAddress is the upstream dispatcher bus socket, as a
	// unix:// URL. Defaults to DefaultDispatcherAddress. Set to "none" to
	// run without a dispatcher connection.
	DispatcherAddress string `yaml:"dispatcher_address"`

	// LogPath is the log file destination. Defaults to DefaultLogPath.
	// An empty string in an explicit config file keeps logs on stderr.
	LogPath string `yaml:"log_path"`

	// ProvideDelay overrides the dependency-target commit delay in
	// seconds. Zero keeps the built-in delay.
	ProvideDelay int `yaml:"provide_delay,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SocketAddress:     DefaultSocketAddress,
		DispatcherAddress: DefaultDispatcherAddress,
		LogPath:           DefaultLogPath,
	}
}

// Load reads and validates a YAML config file. Missing values fall back to
// the defaults above.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// Distinguish "key absent" from "key present but empty" for log_path.
	var raw struct {
		SocketAddress     *string `yaml:"socket_address"`
		DispatcherAddress *string `yaml:"dispatcher_address"`
		LogPath           *string `yaml:"log_path"`
		ProvideDelay      int     `yaml:"provide_delay"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if raw.SocketAddress != nil {
		cfg.SocketAddress = *raw.SocketAddress
	}
	if raw.DispatcherAddress != nil {
		cfg.DispatcherAddress = *raw.DispatcherAddress
	}
	if raw.LogPath != nil {
		cfg.LogPath = *raw.LogPath
	}
	cfg.ProvideDelay = raw.ProvideDelay

	if cfg.SocketAddress == "" {
		return cfg, fmt.Errorf("socket_address must not be empty")
	}
	return cfg, nil
}
