package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	// KVPrefix - пространство имен для плоского key-value хранилища пользователя
	KVPrefix     string        `env:"KV_PREFIX" envDefault:"fieldops:"`
	CaseCacheTTL time.Duration `env:"CASE_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Assignment watcher
	AssignmentPollInterval time.Duration `env:"ASSIGNMENT_POLL_INTERVAL" envDefault:"5s"`
	AssignmentUserID       string        `env:"ASSIGNMENT_USER_ID" envDefault:"field-team-1"`

	// SLA
	SLAAlertThresholdMinutes int `env:"SLA_ALERT_THRESHOLD_MINUTES" envDefault:"30"`

	// Ключ карт, используется если ключ не сохранен пользователем
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		KVPrefix:                 getEnv("KV_PREFIX", "fieldops:"),
		CaseCacheTTL:             getEnvAsDuration("CASE_CACHE_TTL", 5*time.Minute),
		WebhookURL:               os.Getenv("WEBHOOK_URL"),
		WebhookSecret:            os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:           getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:        getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:         getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AssignmentPollInterval:   getEnvAsDuration("ASSIGNMENT_POLL_INTERVAL", 5*time.Second),
		AssignmentUserID:         getEnv("ASSIGNMENT_USER_ID", "field-team-1"),
		SLAAlertThresholdMinutes: getEnvAsInt("SLA_ALERT_THRESHOLD_MINUTES", 30),
		GoogleMapsAPIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.AssignmentPollInterval <= 0 {
		return nil, fmt.Errorf("ASSIGNMENT_POLL_INTERVAL must be positive, got %s", cfg.AssignmentPollInterval)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
