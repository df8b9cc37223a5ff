// Package config loads run configuration from an optional YAML file plus
// environment overrides. Configuration selects what to build and where to
// write it; part dimensions are compiled-in tables and never come from here.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the run configuration for the generator.
type Config struct {
	OutDir   string   `mapstructure:"out_dir"`
	Cells    int      `mapstructure:"cells"`
	Formats  []string `mapstructure:"formats"`
	Families []string `mapstructure:"families"`
	LogLevel string   `mapstructure:"log_level"`
	LogJSON  bool     `mapstructure:"log_json"`
}

// Load reads configuration from the given file (or, when path is empty, from
// partgen.yaml in the working directory if present) and from RAILPARTS_*
// environment variables. Missing files are not an error; defaults fill in
// the rest.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("railparts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults registered up front so environment overrides are seen by
	// Unmarshal even without a config file.
	v.SetDefault("out_dir", "out")
	v.SetDefault("cells", 300)
	v.SetDefault("formats", []string{"stl"})
	v.SetDefault("families", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("partgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Cells < 16 {
		return fmt.Errorf("cells must be at least 16, got %d", c.Cells)
	}
	for _, f := range c.Formats {
		if f != "stl" && f != "3mf" {
			return fmt.Errorf("unknown format %q (want stl or 3mf)", f)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
