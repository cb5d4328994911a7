package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sumcheck/sumcheck/internal/arith"
	"github.com/sumcheck/sumcheck/pkg/errors"
)

// Config represents the complete configuration structure
type Config struct {
	Arith   ArithConfig   `mapstructure:"arith"`
	Harness HarnessConfig `mapstructure:"harness"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ArithConfig contains settings for the addition core
type ArithConfig struct {
	Policy string `mapstructure:"policy"`
}

// OverflowPolicy returns the parsed overflow policy. Validate must have
// accepted the config first.
func (a ArithConfig) OverflowPolicy() arith.Policy {
	p, err := arith.ParsePolicy(a.Policy)
	if err != nil {
		return arith.PolicyChecked
	}
	return p
}

// HarnessConfig contains settings for the verification harness
type HarnessConfig struct {
	FailFast bool   `mapstructure:"fail_fast"`
	Filter   string `mapstructure:"filter"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Arith: ArithConfig{
			Policy: "checked",
		},
		Harness: HarnessConfig{
			FailFast: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	// Set up viper
	v := viper.New()
	v.SetConfigType("toml")

	// Handle config file path
	if configPath != "" {
		// Use explicit config path
		v.SetConfigFile(configPath)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath("/etc/sumcheck")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Set up environment variable binding
	v.SetEnvPrefix("SUMCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvironmentVariables(v)

	// Set defaults from DefaultConfig
	setDefaults(v, config)

	// Read the config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		// If config file is explicitly specified, fail on read error
		if configPath != "" {
			return nil, errors.NewConfigError("", fmt.Sprintf("failed to read config file %s: %v", configPath, err), nil)
		}
		// Otherwise, continue with defaults and environment variables
	}

	// Unmarshal config
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.NewConfigError("", "failed to unmarshal config", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// bindEnvironmentVariables binds specific environment variables
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("arith.policy", "SUMCHECK_POLICY", "SUMCHECK_ARITH_POLICY")

	v.BindEnv("harness.fail_fast", "SUMCHECK_HARNESS_FAIL_FAST")
	v.BindEnv("harness.filter", "SUMCHECK_HARNESS_FILTER")

	v.BindEnv("logging.level", "SUMCHECK_LOG_LEVEL")
	v.BindEnv("logging.format", "SUMCHECK_LOG_FORMAT")
	v.BindEnv("logging.output", "SUMCHECK_LOG_OUTPUT")
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("arith.policy", config.Arith.Policy)
	v.SetDefault("harness.fail_fast", config.Harness.FailFast)
	v.SetDefault("harness.filter", config.Harness.Filter)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.format", config.Logging.Format)
	v.SetDefault("logging.output", config.Logging.Output)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate the overflow policy
	if _, err := arith.ParsePolicy(c.Arith.Policy); err != nil {
		return errors.NewConfigError("arith.policy", fmt.Sprintf("invalid overflow policy: %s", c.Arith.Policy), err)
	}

	// Validate logging configuration
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return errors.NewConfigError("logging.level", fmt.Sprintf("invalid log level: %s", c.Logging.Level), nil)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return errors.NewConfigError("logging.format", fmt.Sprintf("invalid log format: %s", c.Logging.Format), nil)
	}

	// Validate output path if it's a file
	if c.Logging.Output != "stdout" && c.Logging.Output != "stderr" {
		dir := filepath.Dir(c.Logging.Output)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return errors.NewConfigError("logging.output", fmt.Sprintf("log output directory does not exist: %s", dir), err)
		}
	}

	return nil
}
