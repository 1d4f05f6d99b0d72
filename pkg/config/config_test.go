package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		MongoURI:              DefaultMongoURI,
		MongoDatabaseName:     DefaultMongoDatabaseName,
		MongoConnTimeout:      DefaultMongoConnTimeout,
		Port:                  DefaultPort,
		Timezone:              "UTC",
		RateLimitRequests:     DefaultRateLimitRequests,
		RateLimitWindow:       DefaultRateLimitWindow,
		RequestTimeout:        DefaultRequestTimeout,
		IdempotencyTTL:        DefaultIdempotencyTTL,
		MaxRequestSize:        DefaultMaxRequestSize,
		ReadTimeout:           DefaultReadTimeout,
		WriteTimeout:          DefaultWriteTimeout,
		IdleTimeout:           DefaultIdleTimeout,
		ShutdownTimeout:       DefaultShutdownTimeout,
		SerpApiBaseURL:        DefaultSerpApiBaseURL,
		UpstreamTimeout:       DefaultUpstreamTimeout,
		UpstreamRPS:           DefaultUpstreamRPS,
		ChatProvider:          DefaultChatProvider,
		JWTSecret:             DefaultJWTSecret,
		JWTTTL:                DefaultJWTTTL,
		ConciergeSessionTTL:   DefaultConciergeSessionTTL,
		ConciergeHistoryLimit: DefaultConciergeHistoryLimit,
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got: %v", err)
	}
	if cfg.Location == nil || cfg.Location.String() != "UTC" {
		t.Errorf("expected Location to be resolved to UTC, got %v", cfg.Location)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"port not numeric", func(c *Config) { c.Port = "http" }, "Port must be between"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "Port must be between"},
		{"mongo uri scheme", func(c *Config) { c.MongoURI = "postgres://localhost" }, "MongoURI must start with"},
		{"empty database", func(c *Config) { c.MongoDatabaseName = "" }, "MongoDatabaseName cannot be empty"},
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "Timezone must be a valid IANA name"},
		{"zero session ttl", func(c *Config) { c.ConciergeSessionTTL = 0 }, "ConciergeSessionTTL must be positive"},
		{"zero history limit", func(c *Config) { c.ConciergeHistoryLimit = 0 }, "ConciergeHistoryLimit must be positive"},
		{"serpapi url", func(c *Config) { c.SerpApiBaseURL = "serpapi.com" }, "SerpApiBaseURL must be an http(s) URL"},
		{"chat provider", func(c *Config) { c.ChatProvider = "openai" }, "ChatProvider must be one of"},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }, "JWTSecret must be at least 16 characters"},
		{"negative rps", func(c *Config) { c.UpstreamRPS = -1 }, "UpstreamRPS cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error to contain %q, got: %v", tt.contains, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.RequestTimeout = -time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "1. ") || !strings.Contains(err.Error(), "2. ") {
		t.Errorf("expected numbered list of errors, got: %v", err)
	}
}

func TestChatConfigured(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		groqKey  string
		gemKey   string
		expected bool
	}{
		{"groq with key", ChatProviderGroq, "gsk", "", true},
		{"groq without key", ChatProviderGroq, "", "g", false},
		{"gemini with key", ChatProviderGemini, "", "g", true},
		{"gemini without key", ChatProviderGemini, "gsk", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ChatProvider: tt.provider, GroqAPIKey: tt.groqKey, GeminiAPIKey: tt.gemKey}
			if got := cfg.ChatConfigured(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("LUXESTAY_TEST_NUM", "42")
	t.Setenv("LUXESTAY_TEST_BAD_NUM", "forty")
	t.Setenv("LUXESTAY_TEST_DURATION", "90s")
	t.Setenv("LUXESTAY_TEST_BOOL", "false")

	if got := getEnvNum("LUXESTAY_TEST_NUM", 1); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := getEnvNum("LUXESTAY_TEST_BAD_NUM", 7); got != 7 {
		t.Errorf("expected fallback 7, got %d", got)
	}
	if got := getEnvDuration("LUXESTAY_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("expected 90s, got %s", got)
	}
	if got := getEnvBool("LUXESTAY_TEST_BOOL", true); got {
		t.Error("expected false, got true")
	}
	if got := getEnvStr("LUXESTAY_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}
}
