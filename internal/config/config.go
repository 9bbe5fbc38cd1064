// config предоставляет структуру конфигурации filmorate
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Драйверы хранилища.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
	Limits   LimitsConfig   `yaml:"limits"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// StorageConfig — выбор реализации хранилища.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES"`
}

// RedisConfig — кэш справочников; пустой URL отключает кэш.
type RedisConfig struct {
	URL    string        `yaml:"url" env:"REDIS_URL"`
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"filmorate:dict:"`
	TTL    time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// LimitsConfig — размер выборки популярных фильмов по умолчанию и верхняя граница.
// PopularMax == 0 снимает ограничение; запрос сверх границы отклоняется.
type LimitsConfig struct {
	PopularDefault int `yaml:"popular_default" env:"POPULAR_DEFAULT" env-default:"10"`
	PopularMax     int `yaml:"popular_max" env:"POPULAR_MAX" env-default:"0"`
}

// TracingConfig — экспорт трассировок OpenTelemetry по OTLP/HTTP.
// Пустой Endpoint отключает экспорт.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint" env:"OTEL_ENDPOINT"`
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"filmorate"`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO" env-default:"1"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch {
	case path != "":
		c, err = readFile(path)
	case os.Getenv("CONFIG_PATH") != "":
		c, err = readFile(os.Getenv("CONFIG_PATH"))
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			c, err = readFile("local.yaml")
			break
		}

		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", envErr)
		}
		c = &cfg
	}
	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	if c.HTTP.Host == "" {
		return fmt.Errorf("http.host is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("postgres.url is required for storage.driver=postgres")
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q", DriverMemory, DriverPostgres)
	}

	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis.ttl must be >= 0")
	}

	if c.Timeouts.Service < 0 {
		return fmt.Errorf("timeouts.service must be >= 0")
	}

	if c.Limits.PopularDefault <= 0 {
		return fmt.Errorf("limits.popular_default must be > 0")
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1]")
	}

	if c.Limits.PopularMax < 0 {
		return fmt.Errorf("limits.popular_max must be >= 0")
	}

	if c.Limits.PopularMax > 0 && c.Limits.PopularMax < c.Limits.PopularDefault {
		return fmt.Errorf("limits.popular_max must be >= limits.popular_default")
	}

	return nil
}
