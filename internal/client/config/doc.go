// Package config loads runtime configuration for the CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags -a (server address), -t (timeout, seconds) and
//     -s (session directory).
//
// JSON durations are strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_dir": ".studentteacher"
//	}
package config
