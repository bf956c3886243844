package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Keycloak  KeycloakConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// KeycloakConfig identifies the identity provider and the confidential
// client this service authenticates with. Read once at startup and held
// immutable for the process lifetime.
type KeycloakConfig struct {
	URL          string        `env:"KEYCLOAK_URL,           default=http://localhost:8180"`
	Realm        string        `env:"KEYCLOAK_REALM,         default=ITM"`
	AuthRealm    string        `env:"KEYCLOAK_AUTH_REALM,    default=master"`
	ClientID     string        `env:"KEYCLOAK_CLIENT_ID"`
	ClientSecret string        `env:"KEYCLOAK_CLIENT_SECRET"`
	Timeout      time.Duration `env:"KEYCLOAK_TIMEOUT,       default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backend_resources"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig throttles user creation per authenticated caller.
type RateLimitConfig struct {
	CreateLimit  int           `env:"CREATE_RATE_LIMIT,  default=30"`
	CreateWindow time.Duration `env:"CREATE_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
