package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
	Repository RepositoryConfig `yaml:"repository"`
}

type ServerConfig struct {
	Host          string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port          string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	RateLimitRPM  int           `yaml:"rate_limit_rpm" env:"RATE_LIMIT_RPM" env-default:"100"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace" env:"SHUTDOWN_GRACE" env-default:"10s"`
}

type PostgresConfig struct {
	URL            string        `yaml:"url" env:"POSTGRES_URL"`
	MaxConnections int32         `yaml:"max_connections" env:"POSTGRES_MAX_CONNS" env-default:"10"`
	MinConnections int32         `yaml:"min_connections" env:"POSTGRES_MIN_CONNS" env-default:"2"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"POSTGRES_IDLE_TIMEOUT" env-default:"5m"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

type LoggingConfig struct {
	Development bool `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

type RepositoryConfig struct {
	Type string `yaml:"type" env:"REPOSITORY_TYPE" env-default:"postgres"` // "postgres" или "inmemory"
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("чтение конфига %s: %w", configPath, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("чтение конфига из окружения: %w", err)
	}
	return &cfg, nil
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
