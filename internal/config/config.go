// internal/config/config.go - Configuration management
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Username string `mapstructure:"username"`
	Token    string `mapstructure:"token"`

	API     APIConfig     `mapstructure:"api"`
	Network NetworkConfig `mapstructure:"network"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`

	// DefaultRecipe is used when a tileset is created without an explicit
	// recipe path.
	DefaultRecipe string `mapstructure:"default_recipe"`

	// Attribution is an optional JSON document attached to tileset bodies.
	Attribution string `mapstructure:"attribution"`
}

// APIConfig contains the remote tiling-service endpoint and client limits.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent" validate:"required"`
}

// NetworkConfig tunes the HTTP transport.
type NetworkConfig struct {
	MaxIdleConns     int           `mapstructure:"max_idle_conns" validate:"min=0"`
	IdleConnTimeout  time.Duration `mapstructure:"idle_conn_timeout" validate:"min=0"`
	DisableKeepAlive bool          `mapstructure:"disable_keep_alive"`
}

// OutputConfig controls how API responses are printed.
type OutputConfig struct {
	Indent int `mapstructure:"indent" validate:"min=0,max=16"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load loads configuration from the config file, environment and defaults.
func Load() (*Config, error) {
	setDefaults()
	bindEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options.
func setDefaults() {
	viper.SetDefault("api.base_url", "https://api.mapbox.com")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("api.user_agent", "mts-client/1.0")

	viper.SetDefault("network.max_idle_conns", 100)
	viper.SetDefault("network.idle_conn_timeout", 90*time.Second)
	viper.SetDefault("network.disable_keep_alive", false)

	viper.SetDefault("output.indent", 4)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.verbose", false)
}

// bindEnv wires the credential variables the service has always used.
func bindEnv() {
	viper.BindEnv("username", "MAPBOX_USER_NAME")
	viper.BindEnv("token", "MAPBOX_ACCESS_TOKEN")
}

// Credentials returns the account username and access token. Area estimation
// is a local computation and never needs them; API operations call this and
// fail before any request is built.
func (c *Config) Credentials() (string, string, error) {
	if c.Token == "" {
		return "", "", fmt.Errorf("no access token provided: set the MAPBOX_ACCESS_TOKEN env var")
	}
	if c.Username == "" {
		return "", "", fmt.Errorf("no username provided: set the MAPBOX_USER_NAME env var")
	}
	return c.Username, c.Token, nil
}
