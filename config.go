package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Brundha-2004/smartspend/pkg/mailer"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment. Notification
// enablement and alert dedupe are explicit values injected at construction,
// not ambient flags.
type Config struct {
	Addr        string
	DSN         string
	JWTSecret   string
	AutoMigrate bool
	AlertDedupe bool
	Mail        mailer.Config
}

func loadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using environment as-is: %v", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}

	return &Config{
		Addr:        getEnv("HTTP_ADDR", ":8082"),
		DSN:         getEnv("DB_DSN", ""),
		JWTSecret:   secret,
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		AlertDedupe: getEnvBool("ALERT_DEDUPE", false),
		Mail: mailer.Config{
			Enabled:  getEnvBool("NOTIFY_ENABLED", false),
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "smartspend@localhost"),
			BaseURL:  getEnv("BASE_URL", "http://localhost:8082"),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
		log.Printf("invalid integer in %s, using default %d", key, defaultVal)
	}
	return defaultVal
}
