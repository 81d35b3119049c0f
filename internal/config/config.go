package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Problem bank
	ManifestPath   string
	CollectionsDir string

	// Learner state
	ProgressPath string

	// Auth
	PasswordHash string
	SessionTTL   time.Duration

	// Rendering
	RenderPrecision int
	SanitizeOutput  bool

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		ManifestPath:   os.Getenv("BANK_MANIFEST"),
		CollectionsDir: envOr("BANK_DIR", "./data"),

		ProgressPath: envOr("PROGRESS_FILE", "./progress.json"),

		PasswordHash: os.Getenv("ACCESS_PASSWORD_HASH"),
		SessionTTL:   envDuration("SESSION_TTL", 12*time.Hour),

		RenderPrecision: envInt("RENDER_PRECISION", 4),
		SanitizeOutput:  envBool("SANITIZE_OUTPUT", true),

		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),
	}

	if cfg.RenderPrecision <= 0 {
		cfg.RenderPrecision = 4
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 20
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 40
	}

	return cfg
}

func (c Config) Validate() error {
	if c.PasswordHash == "" {
		return fmt.Errorf("ACCESS_PASSWORD_HASH is required")
	}
	if len(c.PasswordHash) != 64 {
		return fmt.Errorf("ACCESS_PASSWORD_HASH must be a hex SHA-256 digest")
	}
	if c.ManifestPath == "" && c.CollectionsDir == "" {
		return fmt.Errorf("one of BANK_MANIFEST or BANK_DIR is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
