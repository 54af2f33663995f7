// Package config loads the cart's YAML configuration and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/cart"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Orders  OrdersConfig  `yaml:"orders"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, file, sqlite
	Path    string `yaml:"path"`
	Key     string `yaml:"key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type OrdersConfig struct {
	// Path of the SQLite database orders are written to. Empty means orders are only logged.
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    ".emmdra/cart.db",
			Key:     cart.DefaultKey,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error. Environment
// variables win over both.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EMMDRA_CART_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("EMMDRA_CART_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("EMMDRA_CART_KEY"); v != "" {
		c.Storage.Key = v
	}
	if v := os.Getenv("EMMDRA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("EMMDRA_ORDERS_PATH"); v != "" {
		c.Orders.Path = v
	}
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Logger builds a production zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
