package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Default values used when neither a config file nor a flag sets them.
const (
	defaultConnections = 1000
	defaultTop         = 3
)

// Config holds settings read from a TOML file.
//
// Values are range-checked by the command that uses them, not at load time,
// so a setting meant for connect never makes bottleneck fail.
//
// Example circuits.toml:
//
//	input       = "junctions.txt"
//	connections = 1000
//	top         = 3
type Config struct {
	// Input is the point file used when no file argument is given. Empty or "-" means stdin.
	Input string `toml:"input"`

	// Connections is the number of shortest pairs processed by the connect command.
	Connections int `toml:"connections"`

	// Top is how many of the largest circuits the connect command multiplies.
	Top int `toml:"top"`
}

func defaultConfig() Config {
	return Config{
		Connections: defaultConnections,
		Top:         defaultTop,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
// Keys present in the file but unknown to Config are returned so the caller can warn.
func loadConfig(path string) (Config, []string, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("load config %s: %w", path, err)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}

	return cfg, unknown, nil
}
