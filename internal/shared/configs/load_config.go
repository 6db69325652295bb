package configs

import (
	"fmt"
	"strings"

	"hn-stat/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. HNSTAT_LOG_LEVEL overrides log.level.
const EnvPrefix = "HNSTAT"

var defaults = map[string]any{
	"log.level":                  "warn",
	"source.root_dir":            ".",
	"source.max_line_bytes":      1024 * 1024,
	"query.skip_malformed":       true,
	"query.default_top_n":        10,
	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// at configPath and HNSTAT_* environment variables, then validates it.
// An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := validators.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}

	return &cfg, nil
}
