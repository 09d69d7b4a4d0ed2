// Package config provides 12-factor configuration for the apppath CLI.
//
// Configuration is loaded from environment variables with sensible
// defaults; CLI flags override the environment per invocation.
//
// Configuration Sections:
//   - Output: default output format for resolved paths
//   - Logging: log level and encoder selection
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("default format: %s\n", cfg.Output.Format)
//
// Environment Variables:
//   - APPPATH_FORMAT
//   - APPPATH_LOG_LEVEL, APPPATH_LOG_DEV
package config
