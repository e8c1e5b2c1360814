// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded from defaults, an optional YAML file and RSA_ prefixed environment
// variables, then validated before any component consumes them. Key generation parameters,
// logging and the key registry database are all configured here.
package config
