package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1248, cfg.Generator.Total)
	assert.Equal(t, int64(20260219), cfg.Generator.Seed)
	assert.Equal(t, "en-IN", cfg.Generator.CurrencyLocale)
	assert.Equal(t, "₹", cfg.Generator.CurrencySymbol)
	assert.Equal(t, 24, cfg.Queue.PriorityCount)
	assert.Equal(t, 25, cfg.Queue.PageSize)
	assert.InDelta(t, 0.3, cfg.Layout.SwapThreshold, 0.001)
	assert.Equal(t, 32, cfg.Layout.MaxResolvePasses)
	assert.Equal(t, 16, cfg.Cache.Size)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
generator:
  total: 300
  currency_locale: en-US
  currency_symbol: $
log:
  level: debug
  format: console
layout:
  swap_threshold: 0.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Generator.Total)
	assert.Equal(t, "en-US", cfg.Generator.CurrencyLocale)
	assert.Equal(t, "$", cfg.Generator.CurrencySymbol)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.InDelta(t, 0.5, cfg.Layout.SwapThreshold, 0.001)
	// Defaults still apply for unset values
	assert.Equal(t, int64(20260219), cfg.Generator.Seed)
	assert.Equal(t, 32, cfg.Layout.MaxResolvePasses)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
generator:
  seed: 7
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("GREENBAG_GENERATOR_SEED", "42")
	t.Setenv("GREENBAG_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("GREENBAG_SERVER_PORT", "3000")
	t.Setenv("GREENBAG_QUEUE_PRIORITY_COUNT", "10")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Queue.PriorityCount)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [\n"), 0644))

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greenbag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  page_size: 40\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Queue.PageSize)
	assert.Equal(t, 1248, cfg.Generator.Total, "defaults still apply")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Generator.Total = 1248
	cfg.Generator.CurrencyLocale = "en-IN"
	cfg.Queue.PriorityCount = 24
	cfg.Queue.PageSize = 25
	cfg.Layout.SwapThreshold = 0.3
	cfg.Layout.MaxResolvePasses = 32
	cfg.Cache.Size = 16
	cfg.Server.Port = 5001
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validDefaults()
	for _, mode := range []string{"generate", "queue", "layout", "serve"} {
		assert.NoError(t, cfg.Validate(mode), mode)
	}
}

func TestValidateGenerate_MissingFields(t *testing.T) {
	cfg := validDefaults()
	cfg.Generator.Total = -1
	cfg.Generator.CurrencyLocale = ""
	cfg.Cache.Size = 0

	err := cfg.Validate("generate")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generator.total must be >= 0")
	assert.Contains(t, err.Error(), "generator.currency_locale is required")
	assert.Contains(t, err.Error(), "cache.size must be > 0")
}

func TestValidateQueue(t *testing.T) {
	cfg := validDefaults()
	cfg.Queue.PageSize = 0
	cfg.Queue.PriorityCount = -3

	err := cfg.Validate("queue")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "queue.page_size must be > 0")
	assert.Contains(t, err.Error(), "queue.priority_count must be >= 0")
}

func TestValidateLayout(t *testing.T) {
	cfg := validDefaults()

	cfg.Layout.SwapThreshold = 0
	err := cfg.Validate("layout")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "layout.swap_threshold")

	cfg.Layout.SwapThreshold = 1.5
	assert.Error(t, cfg.Validate("layout"))

	cfg.Layout.SwapThreshold = 1
	cfg.Layout.MaxResolvePasses = 0
	err = cfg.Validate("layout")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "layout.max_resolve_passes must be > 0")
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate("serve"))
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
