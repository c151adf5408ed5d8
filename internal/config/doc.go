// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to settings needed by
// the store, the storage backends and the command line tool while keeping
// configuration details separate from business logic.
package config
