package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// Database
	MongoURI string
	DBName   string

	// Access tokens
	AccessTokenSecret string

	// Payments
	PaymentSecretKey string
	PaymentCurrency  string

	// Access control
	RequireAuth bool
	AdminEmails []string

	// Token issuance rate limit (per client IP)
	RateLimitRPS   int
	RateLimitBurst int

	AuditEnabled bool
	LogLevel     string

	// Frontend
	FrontendURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "5000"),
		AppName: envOrDefault("APP_NAME", "musical camp"),

		MongoURI: mongoURI(),
		DBName:   envOrDefault("DB_NAME", "musicalCamp"),

		AccessTokenSecret: os.Getenv("ACCESS_TOKEN"),

		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentCurrency:  strings.ToLower(envOrDefault("PAYMENT_CURRENCY", "usd")),

		RequireAuth: envOrDefaultBool("REQUIRE_AUTH", false),
		AdminEmails: envList("ADMIN_EMAILS"),

		RateLimitRPS:   envOrDefaultInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envOrDefaultInt("RATE_LIMIT_BURST", 10),

		AuditEnabled: envOrDefaultBool("AUDIT_ENABLED", true),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),

		FrontendURL: envOrDefault("FRONTEND_URL", "*"),
	}
}

// Validate reports configuration that prevents the server from starting.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN: %w", port.ErrMissingSigningKey)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive (rps=%d, burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// PaymentsEnabled reports whether a payment processor key is configured.
func (c *Config) PaymentsEnabled() bool {
	return c.PaymentSecretKey != ""
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DSN returns the store URI for logging with credentials masked.
func (c *Config) DSN() string {
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return "***"
	}
	if u.User != nil {
		u.User = url.User("***")
	}
	return u.String()
}

// mongoURI prefers MONGODB_URI, then an Atlas URI assembled from DB_USER/DB_PASS/DB_HOST.
func mongoURI() string {
	if v := os.Getenv("MONGODB_URI"); v != "" {
		return v
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" {
		return "mongodb://localhost:27017"
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     envOrDefault("DB_HOST", "cluster0.mongodb.net"),
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envList splits a comma separated variable, dropping blanks.
func envList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
