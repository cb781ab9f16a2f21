package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Durable store
	SurrealURL       string
	SurrealNamespace string
	SurrealDatabase  string
	SurrealUser      string
	SurrealPass      string
	StoreProbe       time.Duration

	// Auth
	JWTSecret string

	// Bootstrap superadmin
	SuperAdminUsername string
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string

	// Outgoing messages
	CompanyName string

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFromName string
	SMTPSecure   bool

	// SMS
	SMSAccountID string
	SMSToken     string
	SMSFrom      string
	SMSBaseURL   string

	// Background sweeps
	SweepInterval time.Duration
	ScanInterval  time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		SurrealURL:       getEnv("SURREAL_URL", "ws://localhost:8080/rpc"),
		SurrealNamespace: getEnv("SURREAL_NS", "caseflow"),
		SurrealDatabase:  getEnv("SURREAL_DB", "caseflow"),
		SurrealUser:      getEnv("SURREAL_USER", ""),
		SurrealPass:      getEnv("SURREAL_PASS", ""),
		StoreProbe:       getEnvDuration("STORE_PROBE_TIMEOUT", 5*time.Second),

		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),

		SuperAdminUsername: getEnv("SUPER_ADMIN_USERNAME", "admin"),
		SuperAdminEmail:    getEnv("SUPER_ADMIN_EMAIL", "admin@localhost"),
		SuperAdminPassword: getEnv("SUPER_ADMIN_PASSWORD", "admin"),
		SuperAdminName:     getEnv("SUPER_ADMIN_NAME", "Administrator"),

		CompanyName: getEnv("COMPANY_NAME", "Caseflow"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Caseflow"),
		SMTPSecure:   strings.ToLower(getEnv("SMTP_SECURE", "true")) == "true",

		SMSAccountID: getEnv("SMS_ACCOUNT_ID", ""),
		SMSToken:     getEnv("SMS_TOKEN", ""),
		SMSFrom:      getEnv("SMS_FROM", ""),
		SMSBaseURL:   getEnv("SMS_BASE_URL", ""),

		SweepInterval: getEnvDuration("SWEEP_INTERVAL", 24*time.Hour),
		ScanInterval:  getEnvDuration("SCAN_INTERVAL", 4*time.Hour),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
