package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Environment string
	LogLevel    string

	ResendAPIKey string
	MailFrom     string
	AppName      string

	MeetingPageSize        int
	SubscriptionPageSize   int
	SubscriptionPageStride int
	// SubscriptionCancelWindow applies the 2-hour meeting cancellation lead
	// to subscription cancellation as well. The original product let
	// subscribers back out at any time, so this defaults off.
	SubscriptionCancelWindow bool

	QueueSize    int
	QueueWorkers int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getEnvWithDefault("MAIL_FROM", "MeetApp <noreply@meetapp.local>"),
		AppName:      getEnvWithDefault("APP_NAME", "MeetApp"),

		MeetingPageSize:          getEnvInt("MEETING_PAGE_SIZE", 20),
		SubscriptionPageSize:     getEnvInt("SUBSCRIPTION_PAGE_SIZE", 10),
		SubscriptionPageStride:   getEnvInt("SUBSCRIPTION_PAGE_STRIDE", 10),
		SubscriptionCancelWindow: getEnvBool("SUBSCRIPTION_CANCEL_WINDOW", false),

		QueueSize:    getEnvInt("QUEUE_SIZE", 128),
		QueueWorkers: getEnvInt("QUEUE_WORKERS", 2),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MeetingPageSize <= 0 || cfg.SubscriptionPageSize <= 0 || cfg.SubscriptionPageStride <= 0 {
		return nil, fmt.Errorf("page sizes and strides must be positive")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
