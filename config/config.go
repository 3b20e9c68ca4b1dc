package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration. It is built once at startup and
// passed by reference; nothing reads the environment after Load returns.
type Config struct {
	Env  string `envconfig:"ENV" default:"dev"`
	Port string `envconfig:"PORT" default:"8083"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"storeratings"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	SecretKey       string `envconfig:"SECRET_KEY_ACCESS_TOKEN" required:"true"`
	TokenTTLMinutes int    `envconfig:"TOKEN_TTL_MINUTES" default:"4320"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	GoogleClientID string `envconfig:"GOOGLE_CLIENT_ID" default:""`
}

// Load reads .env when present and builds the Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using existing environment: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
