// Package config holds runtime settings for the taskauth CLI.
package config

import (
	"flag"
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerAddr     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
}

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TASKAUTH_SERVER"); ok && v != "" {
		cfg.ServerAddr = v
	}
}

// parseFlags reads flags that precede the subcommand. The flag package
// stops at the first non-flag argument, so the command and its
// arguments stay available through fs.Args().
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) []string {
	serverAddr := fs.String("s", cfg.ServerAddr, "server base URL")
	fs.Parse(args)
	cfg.ServerAddr = *serverAddr
	return fs.Args()
}

// LoadConfig constructs a Config from defaults, environment and flags.
// Later sources take precedence over earlier ones. The returned slice
// holds the remaining positional arguments (the subcommand and its args).
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, []string) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	rest := parseFlags(cfg, fs, args)
	return cfg, rest
}
