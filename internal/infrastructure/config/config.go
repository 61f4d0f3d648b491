package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Jwt   JwtConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JwtConfig holds the token signing parameters. It is loaded once at startup
// and read-only afterwards; Validate must pass before any request is served.
type JwtConfig struct {
	Key                      string `env:"JWT_KEY"`
	Issuer                   string `env:"JWT_ISSUER"`
	Audience                 string `env:"JWT_AUDIENCE"`
	TokenExpirationInMinutes int    `env:"JWT_TOKEN_EXPIRATION_IN_MINUTES, default=60"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=projecthub"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// minKeyBytes is the minimum HMAC secret length accepted at startup.
const minKeyBytes = 32

// Validate enforces the signing contract: a short or missing secret is a
// fatal configuration error, never a per-request one.
func (j JwtConfig) Validate() error {
	if j.Key == "" {
		return errors.New("config: JWT_KEY must be set")
	}
	if len(j.Key) < minKeyBytes {
		return fmt.Errorf("config: JWT_KEY must be at least %d bytes, got %d", minKeyBytes, len(j.Key))
	}
	if j.Issuer == "" {
		return errors.New("config: JWT_ISSUER must be set")
	}
	if j.Audience == "" {
		return errors.New("config: JWT_AUDIENCE must be set")
	}
	if j.TokenExpirationInMinutes <= 0 {
		return fmt.Errorf("config: JWT_TOKEN_EXPIRATION_IN_MINUTES must be positive, got %d", j.TokenExpirationInMinutes)
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
