// Package config handles configuration loading, parsing, and validation
// from a .env file, an optional config.yaml and TODO_-prefixed environment
// variables. It provides type-safe access to server and database settings
// while keeping configuration details separate from business logic.
package config
