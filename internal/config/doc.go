// Package config manages application configuration for guildstream.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // report every invalid variable at once
//	}
//
// # Environment Variables
//
//	GUILDSTREAM_ENV         - development, production or test (default: development)
//	GUILDSTREAM_LOG_LEVEL   - debug, info, warn or error (default: warn)
//	GUILDSTREAM_LOG_FORMAT  - text or json (default: text)
//	GUILDSTREAM_DEMO_SKILL  - skill used by the filter step (default: ARCHERY)
package config
