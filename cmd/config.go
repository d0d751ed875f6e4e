package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "8080"
	defaultDBPort          = "5432"
	defaultDBSslMode       = "disable"
	defaultRedisAddr       = "localhost:6379"
	defaultRedisChannel    = "warehouse.events"
	defaultOutboxBatchSize = 100
	defaultLogLevel        = "info"
	defaultAppEnv          = "production"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr    string
	RedisChannel string

	OutboxRelaySchedule string
	OutboxBatchSize     int

	LogLevel string
	AppEnv   string
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment take precedence over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	batchSize, err := intEnv("OUTBOX_BATCH_SIZE", defaultOutboxBatchSize)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:            stringEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:              stringEnv("DB_HOST", "localhost"),
		DBPort:              stringEnv("DB_PORT", defaultDBPort),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           stringEnv("DB_SSLMODE", defaultDBSslMode),
		RedisAddr:           stringEnv("REDIS_ADDR", defaultRedisAddr),
		RedisChannel:        stringEnv("REDIS_CHANNEL", defaultRedisChannel),
		OutboxRelaySchedule: stringEnv("OUTBOX_RELAY_SCHEDULE", jobs.DefaultOutboxRelaySchedule),
		OutboxBatchSize:     batchSize,
		LogLevel:            stringEnv("LOG_LEVEL", defaultLogLevel),
		AppEnv:              stringEnv("APP_ENV", defaultAppEnv),
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
