// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration for the rbcore tool.
// The math kernels themselves take no configuration; everything here tunes
// the CLI host surface around them.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Sample SampleConfig `mapstructure:"sample" yaml:"sample"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SampleConfig holds the defaults for the batch vector sampler. CLI flags
// override each field per invocation.
type SampleConfig struct {
	Count   int     `mapstructure:"count" yaml:"count"`
	Workers int     `mapstructure:"workers" yaml:"workers"`
	MaxNorm float64 `mapstructure:"max_norm" yaml:"max_norm"`
	Seed    int64   `mapstructure:"seed" yaml:"seed"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	// Format is "json" or "text".
	Format string `mapstructure:"format" yaml:"format"`
	// Pretty enables indented JSON output.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`
}

// Validate rejects configurations the commands cannot run with.
func (c *Config) Validate() error {
	if c.Sample.Count < 0 {
		return fmt.Errorf("sample.count must be >= 0, got %d", c.Sample.Count)
	}
	if c.Sample.Workers < 1 {
		return fmt.Errorf("sample.workers must be >= 1, got %d", c.Sample.Workers)
	}
	if c.Sample.MaxNorm < 0 {
		return fmt.Errorf("sample.max_norm must be >= 0, got %g", c.Sample.MaxNorm)
	}
	switch c.Output.Format {
	case "json", "text":
	default:
		return fmt.Errorf("output.format must be json or text, got %q", c.Output.Format)
	}
	return nil
}

// NewDefaultConfig creates a new configuration struct populated with
// default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration
// parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "rbcore")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Sampler --
	v.SetDefault("sample.count", 1000)
	v.SetDefault("sample.workers", 4)
	v.SetDefault("sample.max_norm", 1.0)
	v.SetDefault("sample.seed", 0)

	// -- Output --
	v.SetDefault("output.format", "text")
	v.SetDefault("output.pretty", false)
}
