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

	// Auth Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"travel-tracking"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Geocoding Config
	GeocodingProvider    string        `env:"GEOCODING_PROVIDER" envDefault:"nominatim"`
	GoogleMapsAPIKey     string        `env:"GOOGLE_MAPS_API_KEY"`
	MapboxAPIKey         string        `env:"MAPBOX_API_KEY"`
	GeocodingUserAgent   string        `env:"GEOCODING_USER_AGENT" envDefault:"travel-tracking/1.0"`
	GeocodingEmail       string        `env:"GEOCODING_EMAIL"`
	GeocodingTimeout     time.Duration `env:"GEOCODING_TIMEOUT" envDefault:"10s"`
	GeocodingMinInterval time.Duration `env:"GEOCODING_MIN_INTERVAL" envDefault:"1s"`
	GeocodingCacheSize   int           `env:"GEOCODING_CACHE_SIZE" envDefault:"1000"`
	GeocodingCacheEvict  int           `env:"GEOCODING_CACHE_EVICT" envDefault:"100"`

	// Maintenance Config
	RetentionDays  int           `env:"RETENTION_DAYS" envDefault:"30"`
	JobPollTimeout time.Duration `env:"JOB_POLL_TIMEOUT" envDefault:"5s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            getEnv("JWT_ISSUER", "travel-tracking"),
		JWTTTL:               getEnvAsDuration("JWT_TTL", 24*time.Hour),
		GeocodingProvider:    getEnv("GEOCODING_PROVIDER", "nominatim"),
		GoogleMapsAPIKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		MapboxAPIKey:         os.Getenv("MAPBOX_API_KEY"),
		GeocodingUserAgent:   getEnv("GEOCODING_USER_AGENT", "travel-tracking/1.0"),
		GeocodingEmail:       os.Getenv("GEOCODING_EMAIL"),
		GeocodingTimeout:     getEnvAsDuration("GEOCODING_TIMEOUT", 10*time.Second),
		GeocodingMinInterval: getEnvAsDuration("GEOCODING_MIN_INTERVAL", time.Second),
		GeocodingCacheSize:   getEnvAsInt("GEOCODING_CACHE_SIZE", 1000),
		GeocodingCacheEvict:  getEnvAsInt("GEOCODING_CACHE_EVICT", 100),
		RetentionDays:        getEnvAsInt("RETENTION_DAYS", 30),
		JobPollTimeout:       getEnvAsDuration("JOB_POLL_TIMEOUT", 5*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
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
