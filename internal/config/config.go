package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// Config holds all application configuration, including secrets and tunables.
type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	DBUrl            string

	JWTSecret   []byte
	TokenExpiry time.Duration

	SendGridAPIKey string
	FromEmail      string

	VerificationCodeLength int
	VerificationCodeExpiry time.Duration

	EmailLimitPerIPPerHour    int
	EmailLimitPerEmailPerHour int
	GlobalEmailLimitPerHour   int
	RateLimitWindow           time.Duration

	UploadDir   string
	CORSOrigins []string
	SeedOnStart bool
}

// Constants for configuration defaults and fixed tunables.
const (
	OrganizationName = "Skills Development and Entrepreneurship Department"

	DefaultAppPort = "3000"

	VerificationCodeLength        = 6
	DefaultVerificationCodeExpiry = 10 * time.Minute

	DefaultTokenExpiry = 24 * time.Hour

	// Verification-email abuse limits, counted per rolling window.
	DefaultEmailLimitPerIPPerHour    = 50
	DefaultEmailLimitPerEmailPerHour = 5
	DefaultGlobalEmailLimitPerHour   = 2000
	DefaultRateLimitWindow           = 1 * time.Hour

	// Uploaded images are recompressed toward this budget.
	ProfileImageTargetBytes = 150 * 1024
	ImageStartQuality       = 70
	ImageQualityStep        = 10
	ImageMaxPasses          = 3

	MaxPDFUploadBytes = 5 * 1024 * 1024

	DefaultUploadDir = "uploads"
)

// LoadConfig reads the environment and returns a *Config. Missing required
// values are fatal: the service cannot run without them.
func LoadConfig(appName string) *Config {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET is not set")
	}

	cfg := &Config{
		OrganizationName:       OrganizationName,
		AppName:                appName,
		AppPort:                envOrDefault("PORT", DefaultAppPort),
		AppUrl:                 os.Getenv("APP_URL"),
		DBUrl:                  dbURL,
		JWTSecret:              []byte(jwtSecret),
		TokenExpiry:            envDurationOrDefault("TOKEN_EXPIRY", DefaultTokenExpiry),
		SendGridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		FromEmail:              os.Getenv("EMAIL_FROM"),
		VerificationCodeLength: VerificationCodeLength,
		VerificationCodeExpiry: envDurationOrDefault("OTP_EXPIRY", DefaultVerificationCodeExpiry),

		EmailLimitPerIPPerHour:    DefaultEmailLimitPerIPPerHour,
		EmailLimitPerEmailPerHour: DefaultEmailLimitPerEmailPerHour,
		GlobalEmailLimitPerHour:   DefaultGlobalEmailLimitPerHour,
		RateLimitWindow:           DefaultRateLimitWindow,

		UploadDir:   envOrDefault("UPLOAD_DIR", DefaultUploadDir),
		SeedOnStart: envBool("SEED_ON_START"),
	}

	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
			}
		}
	}

	if cfg.SendGridAPIKey == "" {
		utils.Logger.Warn("SENDGRID_API_KEY not set; verification codes will be logged instead of emailed")
	}

	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', using default %v", key, v, def)
		return def
	}
	return d
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
