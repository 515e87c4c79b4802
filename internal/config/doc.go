// Package config handles configuration loading, parsing, and validation
// from various sources (config file, dotenv file, environment variables).
// It provides type-safe access to the few settings the server needs: the
// listen port, the log level, the shared API key and the task ID strategy.
package config
