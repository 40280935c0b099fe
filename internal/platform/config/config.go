// Package config loads typed application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Migrate controls whether AutoMigrate runs at startup.
	Migrate bool
}

// DSN returns the PostgreSQL connection string for the configured database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
}

// JWTConfig holds token signing settings and lifetimes.
type JWTConfig struct {
	Secret          string
	AccessLifetime  time.Duration
	RefreshLifetime time.Duration
}

// Config is the full runtime configuration, built once in main and passed
// down explicitly. No package keeps a global copy.
type Config struct {
	ServerAddr string
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
}

// Load reads configuration from the environment, after loading a .env file
// if one exists. Missing optional values fall back to development defaults;
// only the JWT secret is required.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg := &Config{
		ServerAddr: getenv("SERVER_ADDR", ":8080"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "cropscience"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "cropscience"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
			Migrate:  getenvBool("RUN_MIGRATIONS", true),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:          secret,
			AccessLifetime:  getenvMinutes("ACCESS_TOKEN_LIFETIME_MIN", 30),
			RefreshLifetime: getenvDays("REFRESH_TOKEN_LIFETIME_DAYS", 7),
		},
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvMinutes(key string, fallback int) time.Duration {
	return time.Duration(getenvInt(key, fallback)) * time.Minute
}

func getenvDays(key string, fallback int) time.Duration {
	return time.Duration(getenvInt(key, fallback)) * 24 * time.Hour
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
