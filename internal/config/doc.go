// Package config manages user-level settings stored at ~/.nextellar/config.yaml.
// It provides defaults for the Stellar endpoints, the install timeout, and the
// package-manager preference, each overridable via NEXTELLAR_-prefixed
// environment variables or command-line flags.
package config
