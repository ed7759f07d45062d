// Package config loads server configuration from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DUEL_DATABASE_URL.
const EnvPrefix = "DUEL"

// Config is the complete server configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Rules    RulesConfig    `mapstructure:"rules"`
	IO       IOConfig       `mapstructure:"io"`
	Replay   ReplayConfig   `mapstructure:"replay"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig overrides the game's rule numbers.
type RulesConfig struct {
	HeroHealth   int `mapstructure:"hero_health"`
	StartingMana int `mapstructure:"starting_mana"`
	MaxManaGrant int `mapstructure:"max_mana_grant"`
}

// IOConfig names the batch input and output documents.
type IOConfig struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// ReplayConfig controls replay recording.
type ReplayConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Directory string `mapstructure:"directory"`
}

// DatabaseConfig points at the optional PostgreSQL history store.
// An empty URL disables persistence.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// ServerConfig holds the network listeners used by `serve`.
type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
	GRPC      GRPCConfig      `mapstructure:"grpc"`
}

// WebSocketConfig configures the session runner endpoint.
type WebSocketConfig struct {
	Address        string        `mapstructure:"address"`
	Path           string        `mapstructure:"path"`
	MaxMessageSize int64         `mapstructure:"max_message_size"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// GRPCConfig configures the health service listener.
type GRPCConfig struct {
	Address              string `mapstructure:"address"`
	MaxConcurrentStreams int    `mapstructure:"max_concurrent_streams"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("rules.hero_health", 30)
	v.SetDefault("rules.starting_mana", 1)
	v.SetDefault("rules.max_mana_grant", 10)

	v.SetDefault("io.input", "")
	v.SetDefault("io.output", "out/result.json")

	v.SetDefault("replay.enabled", false)
	v.SetDefault("replay.directory", "replays")

	v.SetDefault("database.url", "")
	v.SetDefault("database.connect_timeout", 5*time.Second)

	v.SetDefault("server.websocket.address", ":8080")
	v.SetDefault("server.websocket.path", "/session")
	v.SetDefault("server.websocket.max_message_size", 4<<20)
	v.SetDefault("server.websocket.write_timeout", 10*time.Second)
	v.SetDefault("server.grpc.address", ":9090")
	v.SetDefault("server.grpc.max_concurrent_streams", 100)
}

// Load reads the configuration file at path, applies DUEL_* environment
// overrides and validates the result. A missing file leaves the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Rules.HeroHealth <= 0 {
		return fmt.Errorf("rules.hero_health must be positive, got %d", c.Rules.HeroHealth)
	}
	if c.Rules.StartingMana < 0 {
		return fmt.Errorf("rules.starting_mana must not be negative, got %d", c.Rules.StartingMana)
	}
	if c.Rules.MaxManaGrant <= 0 {
		return fmt.Errorf("rules.max_mana_grant must be positive, got %d", c.Rules.MaxManaGrant)
	}
	if c.Replay.Enabled && c.Replay.Directory == "" {
		return errors.New("replay.directory is required when replays are enabled")
	}
	return nil
}
