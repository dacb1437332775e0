package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Pixabay  PixabayConfig
	S3       S3Config
	Firebase FirebaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
	// ViewerBaseURL is the origin the viewer frontend is served from.
	// Publish targets (#deck=... / #deckdata=...) are built against it.
	ViewerBaseURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	// DSN is optional; when empty the deck archive (listing/history) is
	// disabled and the service runs on Redis alone.
	DSN string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type PixabayConfig struct {
	APIKey string
}

type S3Config struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type FirebaseConfig struct {
	CredentialsPath string
}

type AppConfig struct {
	Environment    string
	LogLevel       string
	Version        string
	ResolveTimeout time.Duration
	DeckTTL        time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "8080"),
			ViewerBaseURL: getEnv("VIEWER_BASE_URL", "http://localhost:5173"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Pixabay: PixabayConfig{
			APIKey: getEnv("PIXABAY_API_KEY", ""),
		},
		S3: S3Config{
			Region:       getEnv("S3_REGION", "us-east-1"),
			Bucket:       getEnv("S3_BUCKET", ""),
			BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
			AccessKey:    getEnv("S3_ACCESS_KEY", ""),
			SecretKey:    getEnv("S3_SECRET_KEY", ""),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		App: AppConfig{
			Environment:    getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			ResolveTimeout: getEnvAsDuration("RESOLVE_TIMEOUT", 1200*time.Millisecond),
			DeckTTL:        getEnvAsDuration("DECK_TTL", 7*24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.App.ResolveTimeout <= 0 {
		return fmt.Errorf("RESOLVE_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
