package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	ServerAddr string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	// External feed providers
	CoinGeckoAPIURL   string
	CryptoPanicAPIURL string
	CryptoPanicKey    string
	OpenRouterAPIURL  string
	OpenRouterAPIKey  string
	MemeAPIURL        string
	FeedTimeout       time.Duration
	// Logging
	LogLevel string
	LogPath  string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration gets an environment variable as a duration (in seconds) or
// returns a default value.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// Attempt to load .env file. godotenv.Load() will not override existing env vars.
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"), // no hardcoded default for passwords
		DBName:     getEnv("DB_NAME", "coindash"),
		JWTSecret:  os.Getenv("JWT_SECRET"),

		CoinGeckoAPIURL:   getEnv("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),
		CryptoPanicAPIURL: getEnv("CRYPTO_PANIC_API_URL", "https://cryptopanic.com/api/developer/v2"),
		CryptoPanicKey:    os.Getenv("CRYPTO_PANIC_KEY"),
		OpenRouterAPIURL:  getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		MemeAPIURL:        getEnv("MEME_API_URL", "https://meme-api.com"),
		FeedTimeout:       getEnvDuration("FEED_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  getEnv("LOG_PATH", ""),
	}
}
