package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	JWTSecret   string
	TokenExpiry time.Duration

	CORSAllowedOrigins []string

	GeminiAPIKey    string
	GeminiChatModel string
	GeminiTextModel string

	EmailProvider  string // "ses" or "noop"
	EmailFrom      string
	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string

	PaymentProvider string // "mock" or "none"

	// BroadcastDelay is how long the announcement dispatch takes. The
	// dispatcher is a mock; the delay makes the sending phase observable.
	BroadcastDelay time.Duration
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist; we rely on system environment
	// variables there, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenExpiry:     24 * time.Hour,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiChatModel: os.Getenv("GEMINI_CHAT_MODEL"),
		GeminiTextModel: os.Getenv("GEMINI_TEXT_MODEL"),
		EmailProvider:   os.Getenv("EMAIL_PROVIDER"),
		EmailFrom:       os.Getenv("EMAIL_FROM"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		AWSAccessKeyID:  os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		PaymentProvider: os.Getenv("PAYMENT_PROVIDER"),
		BroadcastDelay:  2 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if s := os.Getenv("TOKEN_EXPIRY_HOURS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.TokenExpiry = time.Duration(v) * time.Hour
		}
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.CORSAllowedOrigins = strings.Split(s, ",")
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:5173"}
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "ecudecaalumni@gmail.com"
	}
	if cfg.PaymentProvider == "" {
		cfg.PaymentProvider = "mock"
	}
	if s := os.Getenv("BROADCAST_DELAY_MS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.BroadcastDelay = time.Duration(v) * time.Millisecond
		}
	}

	return cfg, nil
}
