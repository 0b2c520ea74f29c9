package config

import (
	"flag"
	"fmt"
	"io"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the command line client.
type ClientConfig struct {
	// Adapter points the client at a running server.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// GetClientConfig loads the client settings from the environment and the
// leading flags of args; flags win. The arguments left after the flags are
// returned as the command to run.
//
// Flags:
//
//	-a server base URL or host:port
//	-t request timeout (e.g., "10s")
//	-log-level zerolog level name
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("user-records-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fromFlags := &ClientConfig{}
	fs.StringVar(&fromFlags.Adapter.HTTPAddress, "a", "", "Server address")
	fs.DurationVar(&fromFlags.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&fromFlags.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	if err := mergo.Merge(cfg, fromFlags, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		return nil, nil, fmt.Errorf("%w: empty server address", ErrInvalidServerConfigs)
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	return cfg, fs.Args(), nil
}
