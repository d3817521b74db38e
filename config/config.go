// Package config carrega a configuração do processo a partir do ambiente
// (com .env opcional para desenvolvimento local).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string `mapstructure:"LISTEN_ADDR"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Throttle: janela fixa no substrato (redis) ou token bucket local (memory).
	RateStore       string        `mapstructure:"RATE_STORE"`
	RateWindow      time.Duration `mapstructure:"RATE_WINDOW"`
	RateMaxRequests int64         `mapstructure:"RATE_MAX_REQUESTS"`
	RateKeyHeader   string        `mapstructure:"RATE_KEY_HEADER"`
	TrustXFF        bool          `mapstructure:"TRUST_XFF"`
	RateRPS         float64       `mapstructure:"RATE_RPS"`
	RateBurst       int           `mapstructure:"RATE_BURST"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	NotificationTTL time.Duration `mapstructure:"NOTIFICATION_TTL"`

	// DATABASE_URL vazio = repositórios em memória.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
}

func LoadFromEnv() (*Config, error) {
	// .env só para desenvolvimento local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_STORE", "redis")
	v.SetDefault("RATE_WINDOW", "60s")
	v.SetDefault("RATE_MAX_REQUESTS", 100)
	v.SetDefault("RATE_KEY_HEADER", "")
	v.SetDefault("TRUST_XFF", false)
	v.SetDefault("RATE_RPS", 10.0)
	v.SetDefault("RATE_BURST", 20)
	v.SetDefault("JWT_SECRET", "supersecret")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("NOTIFICATION_TTL", "300s")
	v.SetDefault("DATABASE_URL", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.RateStore != "redis" && cfg.RateStore != "memory" {
		return nil, fmt.Errorf("RATE_STORE must be redis or memory, got %q", cfg.RateStore)
	}
	if cfg.RateWindow <= 0 {
		return nil, errors.New("RATE_WINDOW must be > 0")
	}
	if cfg.RateMaxRequests <= 0 {
		return nil, errors.New("RATE_MAX_REQUESTS must be > 0")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return &cfg, nil
}
