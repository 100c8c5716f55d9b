package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextellar-labs/create-nextellar-app/internal/branding"
	"github.com/nextellar-labs/create-nextellar-app/internal/scaffold"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys. Each can be set in the config file or
// overridden via a NEXTELLAR_-prefixed environment variable.
const (
	KeyHorizonURL     = "horizon-url"
	KeySorobanRPCURL  = "soroban-rpc-url"
	KeyPackageManager = "package-manager"
	KeyInstallTimeout = "install-timeout"
	KeyTemplateRoot   = "template-root"
)

// DefaultInstallTimeoutMS bounds the install step when nothing else
// configures it: twenty minutes. The endpoint defaults live with the
// placeholder table in the scaffold package.
const DefaultInstallTimeoutMS = 1_200_000

// Dir returns the path to the user config directory (~/.nextellar/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.nextellar/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment, and
// registers the built-in defaults.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyHorizonURL, scaffold.DefaultHorizonURL)
	viper.SetDefault(KeySorobanRPCURL, scaffold.DefaultSorobanRPCURL)
	viper.SetDefault(KeyInstallTimeout, DefaultInstallTimeoutMS)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value by key, or zero if not set.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
