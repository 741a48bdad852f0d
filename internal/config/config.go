package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Queue     QueueConfig     `yaml:"queue" mapstructure:"queue"`
	Layout    LayoutConfig    `yaml:"layout" mapstructure:"layout"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// GeneratorConfig configures the synthetic population.
type GeneratorConfig struct {
	Total          int    `yaml:"total" mapstructure:"total"`
	Seed           int64  `yaml:"seed" mapstructure:"seed"`
	CurrencyLocale string `yaml:"currency_locale" mapstructure:"currency_locale"`
	CurrencySymbol string `yaml:"currency_symbol" mapstructure:"currency_symbol"`
}

// QueueConfig configures the intervention queue views.
type QueueConfig struct {
	PriorityCount int `yaml:"priority_count" mapstructure:"priority_count"`
	PageSize      int `yaml:"page_size" mapstructure:"page_size"`
}

// LayoutConfig tunes dashboard layout reconciliation.
type LayoutConfig struct {
	SwapThreshold    float64 `yaml:"swap_threshold" mapstructure:"swap_threshold"`
	MaxResolvePasses int     `yaml:"max_resolve_passes" mapstructure:"max_resolve_passes"`
}

// CacheConfig sizes the population cache.
type CacheConfig struct {
	Size int `yaml:"size" mapstructure:"size"`
}

// ServerConfig configures the health check server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty, and then from the environment. Only an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("GREENBAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("generator.total", 1248)
	v.SetDefault("generator.seed", 20260219)
	v.SetDefault("generator.currency_locale", "en-IN")
	v.SetDefault("generator.currency_symbol", "₹")
	v.SetDefault("queue.priority_count", 24)
	v.SetDefault("queue.page_size", 25)
	v.SetDefault("layout.swap_threshold", 0.3)
	v.SetDefault("layout.max_resolve_passes", 32)
	v.SetDefault("cache.size", 16)
	v.SetDefault("server.port", 5001)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Every problem is
// reported at once.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "generate":
		errs = append(errs, c.validateGenerator()...)
	case "queue":
		errs = append(errs, c.validateGenerator()...)
		if c.Queue.PriorityCount < 0 {
			errs = append(errs, "queue.priority_count must be >= 0")
		}
		if c.Queue.PageSize <= 0 {
			errs = append(errs, "queue.page_size must be > 0")
		}
	case "layout":
		if c.Layout.SwapThreshold <= 0 || c.Layout.SwapThreshold > 1 {
			errs = append(errs, "layout.swap_threshold must be in (0, 1]")
		}
		if c.Layout.MaxResolvePasses <= 0 {
			errs = append(errs, "layout.max_resolve_passes must be > 0")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.New(fmt.Sprintf("config: %s", strings.Join(errs, "; ")))
	}
	return nil
}

func (c *Config) validateGenerator() []string {
	var errs []string
	if c.Generator.Total < 0 {
		errs = append(errs, "generator.total must be >= 0")
	}
	if c.Generator.CurrencyLocale == "" {
		errs = append(errs, "generator.currency_locale is required")
	}
	if c.Cache.Size <= 0 {
		errs = append(errs, "cache.size must be > 0")
	}
	return errs
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
