package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the web server and the CLI.
type Config struct {
	Addr string

	GoogleBooksBaseURL string
	GoogleBooksAPIKey  string
	GoogleBooksRPS     int
	GoogleBooksTimeout time.Duration

	RedisAddr string
	CacheTTL  time.Duration

	DatabaseDSN string

	DefaultLocale    string
	PageSize         int
	MaxPages         int
	CarouselInterval time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadEnvFiles reads .env and .env.local without overriding variables that
// are already set.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	LoadEnvFiles()

	cfg := Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		GoogleBooksBaseURL: getEnv("GOOGLE_BOOKS_BASE_URL", "https://www.googleapis.com/books/v1"),
		GoogleBooksAPIKey:  os.Getenv("GOOGLE_BOOKS_API_KEY"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		DatabaseDSN:        os.Getenv("DB_DSN"),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "es"),
	}

	var err error
	if cfg.GoogleBooksRPS, err = getInt("GOOGLE_BOOKS_RPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.GoogleBooksTimeout, err = getDuration("GOOGLE_BOOKS_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", 12); err != nil {
		return Config{}, err
	}
	if cfg.MaxPages, err = getInt("MAX_PAGES", 10); err != nil {
		return Config{}, err
	}
	if cfg.CarouselInterval, err = getDuration("CAROUSEL_INTERVAL", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 40); err != nil {
		return Config{}, err
	}

	if cfg.PageSize <= 0 || cfg.PageSize > 40 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be between 1 and 40, got %d", cfg.PageSize)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
