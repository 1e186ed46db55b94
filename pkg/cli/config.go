package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the settings that can come from a config file or the environment.
// Command line flags override them.
type Config struct {
	WordKey   string `mapstructure:"word_key"`
	Format    string `mapstructure:"format"`
	Lowercase bool   `mapstructure:"lowercase"`
	MaxNodes  int    `mapstructure:"max_nodes"`
	LogLevel  string `mapstructure:"log_level"`
}

// LoadConfig reads configPath when it is set, then applies WORDTRIE_* environment
// variables on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("wordtrie")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("word_key", "word")
	v.SetDefault("format", "text")
	v.SetDefault("lowercase", false)
	v.SetDefault("max_nodes", 0)
	v.SetDefault("log_level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.WordKey == "" {
		return fmt.Errorf("word key cannot be empty")
	}
	if !contains(formats, strings.ToLower(c.Format)) {
		return fmt.Errorf("invalid format %q, expected one of %v", c.Format, formats)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("invalid max nodes: %d", c.MaxNodes)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
