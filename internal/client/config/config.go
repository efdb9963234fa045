package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the auth gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - SessionDir: directory, relative to the working directory, where the
//     access token of the current session is kept.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionDir         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionDir = ".studentteacher"
}

// LoadConfig applies defaults, then JSON (-c/-config) and flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
