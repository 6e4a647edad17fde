package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/comigor/portfolio-bot/internal/catalog"
)

// Config holds the application configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Server   ServerConfig  `mapstructure:"server"`
	Chatbot  ChatbotConfig `mapstructure:"chatbot"`
	History  HistoryConfig `mapstructure:"history"`
	Catalog  CatalogConfig `mapstructure:"catalog"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Addr joins host and port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// ChatbotConfig tunes the reply loop.
type ChatbotConfig struct {
	TypingDelayBase   time.Duration `mapstructure:"typing_delay_base"`
	TypingDelaySpread time.Duration `mapstructure:"typing_delay_spread"`
	Seed              uint64        `mapstructure:"seed"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
}

// HistoryConfig enables the SQLite transcript when Path is set.
type HistoryConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig overrides the built-in replies. Keys of Replies are category names.
type CatalogConfig struct {
	Greeting string              `mapstructure:"greeting"`
	Replies  map[string][]string `mapstructure:"replies"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("chatbot.typing_delay_base", "1s")
	v.SetDefault("chatbot.typing_delay_spread", "1s")
	v.SetDefault("chatbot.seed", 0)
	v.SetDefault("chatbot.session_ttl", "30m")
	v.SetDefault("chatbot.sweep_interval", "1m")
	v.SetDefault("history.path", "")
}

// Load loads the configuration from config.yaml in the working directory, or from the
// file named by CONFIG_PATH. A missing file leaves the defaults in place. Environment
// variables prefixed with PORTFOLIOBOT_ override file values.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("portfoliobot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Chatbot.TypingDelayBase < 0 || c.Chatbot.TypingDelaySpread < 0 {
		return errors.New("chatbot typing delays must not be negative")
	}
	if c.Server.Port == "" {
		return errors.New("server.port must be configured")
	}
	return nil
}

// BuildCatalog merges the configured overrides into the built-in catalog.
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	replies := make(map[catalog.Category][]string, len(c.Catalog.Replies))
	for name, list := range c.Catalog.Replies {
		cat, err := catalog.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("catalog.replies: %w", err)
		}
		replies[cat] = list
	}
	return catalog.Default().WithOverrides(c.Catalog.Greeting, replies)
}
