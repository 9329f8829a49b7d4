package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	GeminiAPIKey          string
	GoogleCredentialsFile string
	GoogleTokenFile       string

	// Optional with defaults
	DBPath            string
	HTTPPort          int
	GeminiModel       string
	GeminiTemperature float64
	TimeZone          string
	ResendAPIKey      string
	NotifyFromAddress string
	AppURL            string
}

func LoadFromEnv() *Config {
	return &Config{
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		GoogleTokenFile:       getEnvOrDefault("GOOGLE_TOKEN_FILE", "./token.json"),

		DBPath:            getEnvOrDefault("CLIPCAL_DB_PATH", "./clipcal.db"),
		HTTPPort:          getEnvAsIntOrDefault("CLIPCAL_HTTP_PORT", 8080),
		GeminiModel:       getEnvOrDefault("CLIPCAL_GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTemperature: getEnvAsFloatOrDefault("CLIPCAL_GEMINI_TEMPERATURE", 0.3),
		TimeZone:          getEnvOrDefault("CLIPCAL_TIMEZONE", "Asia/Seoul"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		NotifyFromAddress: getEnvOrDefault("CLIPCAL_NOTIFY_FROM", "clipcal@notifications.local"),
		AppURL:            getEnvOrDefault("CLIPCAL_APP_URL", "http://localhost:8080"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
