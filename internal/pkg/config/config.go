package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URLs, secrets)
// - default: Values common across all environments (timeouts, TTLs, formats)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Catalog   CatalogConfig
	Inquiry   InquiryConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

// SessionConfig controls the per-visit session layer. TTL bounds how long an
// idle cart and modal state survive between requests.
type SessionConfig struct {
	Secret        string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
	Cookie        CookieConfig
}

type CookieConfig struct {
	Domain   string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"SESSION_COOKIE_SAMESITE" default:"lax"`
}

type CatalogConfig struct {
	BaseURL  string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	Timeout  time.Duration `envconfig:"CATALOG_TIMEOUT" default:"5s"`
	CacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
}

type InquiryConfig struct {
	BaseURL string        `envconfig:"INQUIRY_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"INQUIRY_TIMEOUT" default:"10s"`
}

// RedisConfig is optional: an empty Addr disables the catalog cache and the
// gateway falls through to the upstream on every call.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	InquiryPerMinute int `envconfig:"RATE_LIMIT_INQUIRY_PER_MINUTE" default:"10"`
	InquiryBurst     int `envconfig:"RATE_LIMIT_INQUIRY_BURST" default:"3"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Session: SessionConfig{
			Secret:        "test-session-secret",
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
		Catalog: CatalogConfig{
			BaseURL:  "http://localhost:18080",
			Timeout:  time.Second,
			CacheTTL: time.Minute,
		},
		Inquiry: InquiryConfig{
			BaseURL: "http://localhost:18081",
			Timeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		RateLimit: RateLimitConfig{
			InquiryPerMinute: 600,
			InquiryBurst:     100,
		},
	}
}
