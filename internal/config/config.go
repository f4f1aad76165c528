package config

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string // Site title shown in the header and <title>
	AppEnv  string
	AppURL  string
	Port    string

	// Rendering
	CodeStyle  string // chroma style used for code blocks
	ShowDrafts bool   // include draft posts in the catalog

	// Observability (optional)
	LogLevel  string
	SentryDSN string

	// Rate limiting (per client IP, 0 disables)
	RateLimit       int
	RateLimitWindow time.Duration
	TrustedProxies  []string // proxy IPs/CIDRs allowed to set X-Forwarded-For

	// Storage for static export (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for non-AWS providers
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Tobby Lie"),
		AppEnv:  envString("APP_ENV", "development"),
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Rendering
		CodeStyle:  envString("CODE_STYLE", "github"),
		ShowDrafts: envBool("SHOW_DRAFTS", false),

		// Observability
		LogLevel:  envString("LOG_LEVEL", ""),
		SentryDSN: envString("SENTRY_DSN", ""),

		// Rate limiting
		RateLimit:       envInt("RATE_LIMIT", 120),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustedProxies:  envList("TRUSTED_PROXIES"),

		// Storage
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	// Production: validate public settings
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the public URL is usable for sitemap and
// robots.txt links. Development keeps the localhost default.
func validateProduction(cfg *Config) {
	if !publicURL(cfg.AppURL) {
		slog.Error("production deployment requires a public APP_URL",
			"app_url", cfg.AppURL,
			"hint", "set APP_ENV=development for local testing")
		os.Exit(1)
	}
}

func publicURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	return host != "localhost" && host != "127.0.0.1" && !strings.HasSuffix(host, ".localhost")
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envList splits a comma-separated variable, dropping empty entries.
func envList(key string) []string {
	var list []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// S3Enabled reports whether a bucket is configured for static export.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Credentials are excluded. Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		CodeStyle:  c.CodeStyle,
		ShowDrafts: c.ShowDrafts,
	}
}
