package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppEnv string

	// Server
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string

	// Rate limiting (flight routes)
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// Duffel
	DuffelAPIKey          string
	DuffelBaseURL         string
	SearchSupplierTimeout time.Duration
	TrendingTimeout       time.Duration

	// Google Sheets
	GoogleServiceAccountEmail string
	GooglePrivateKey          string
	GoogleSheetsID            string
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		ReadTimeout:    time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:   time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 5),
		RateLimitWindow:   time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "flightdesk"),

		DuffelAPIKey:          getEnv("DUFFEL_API_KEY", ""),
		DuffelBaseURL:         getEnv("DUFFEL_BASE_URL", "https://api.duffel.com"),
		SearchSupplierTimeout: time.Duration(getEnvAsInt("SEARCH_SUPPLIER_TIMEOUT_MS", 15000)) * time.Millisecond,
		TrendingTimeout:       time.Duration(getEnvAsInt("TRENDING_SUPPLIER_TIMEOUT_MS", 10000)) * time.Millisecond,

		GoogleServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GooglePrivateKey:          strings.ReplaceAll(getEnv("GOOGLE_PRIVATE_KEY", ""), `\n`, "\n"),
		GoogleSheetsID:            getEnv("GOOGLE_SHEETS_ID", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
