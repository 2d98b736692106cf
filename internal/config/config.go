package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultCodeLength          = 6
	DefaultMaxGenerateAttempts = 100
)

// Config содержит настройки приложения.
// Приоритет значений: переменные окружения > флаги > значения по умолчанию
type Config struct {
	Address         NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	RedisAddress    string         `env:"REDIS_ADDRESS"`

	// Параметры генератора кодов, задаются только значениями по умолчанию
	CodeLength          int `env:"-"`
	MaxGenerateAttempts int `env:"-"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		Address:             NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:             URLPrefix("http://localhost:8080"),
		CodeLength:          DefaultCodeLength,
		MaxGenerateAttempts: DefaultMaxGenerateAttempts,
	}
}

// Load собирает конфигурацию из флагов командной строки и переменных окружения
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	flag.Var(&cfg.Address, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection DSN")
	flag.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis server address")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
