package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"luxestay/pkg/client"
	"luxestay/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Port      string
	LogLevel  string
	LogFormat string
	Timezone  string
	Location  *time.Location

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	SerpApiKey      string
	SerpApiBaseURL  string
	HotelsCurrency  string
	HotelsCountry   string
	HotelsLanguage  string
	UpstreamTimeout time.Duration
	UpstreamRPS     int

	ChatProvider string
	GroqAPIKey   string
	GroqBaseURL  string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string

	JWTSecret string
	JWTTTL    time.Duration

	ConciergeSessionTTL   time.Duration
	ConciergeHistoryLimit int

	DemoUserEnabled bool

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the environment (and a .env file when present), validates the
// result and exits the process on invalid configuration.
func Load(serviceName string) *Config {
	envFileErr := godotenv.Load()

	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RedisAddr:     getEnvStr(EnvRedisAddr, ""),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),

		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),
		Timezone:  getEnvStr(EnvTimezone, DefaultTimezone),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		SerpApiKey:      getEnvStr(EnvSerpApiKey, ""),
		SerpApiBaseURL:  getEnvStr(EnvSerpApiBaseURL, DefaultSerpApiBaseURL),
		HotelsCurrency:  getEnvStr(EnvHotelsCurrency, DefaultHotelsCurrency),
		HotelsCountry:   getEnvStr(EnvHotelsCountry, DefaultHotelsCountry),
		HotelsLanguage:  getEnvStr(EnvHotelsLanguage, DefaultHotelsLanguage),
		UpstreamTimeout: getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),
		UpstreamRPS:     getEnvNum(EnvUpstreamRPS, DefaultUpstreamRPS),

		ChatProvider: strings.ToLower(getEnvStr(EnvChatProvider, DefaultChatProvider)),
		GroqAPIKey:   getEnvStr(EnvGroqAPIKey, ""),
		GroqBaseURL:  getEnvStr(EnvGroqBaseURL, DefaultGroqBaseURL),
		GroqModel:    getEnvStr(EnvGroqModel, DefaultGroqModel),
		GeminiAPIKey: getEnvStr(EnvGeminiAPIKey, ""),
		GeminiModel:  getEnvStr(EnvGeminiModel, DefaultGeminiModel),

		JWTSecret: getEnvStr(EnvJWTSecret, DefaultJWTSecret),
		JWTTTL:    getEnvDuration(EnvJWTTTL, DefaultJWTTTL),

		ConciergeSessionTTL:   getEnvDuration(EnvConciergeSessionTTL, DefaultConciergeSessionTTL),
		ConciergeHistoryLimit: getEnvNum(EnvConciergeHistoryLimit, DefaultConciergeHistoryLimit),

		DemoUserEnabled: getEnvBool(EnvDemoUserEnabled, DefaultDemoUserEnabled),

		Client: client.NewClient(),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if envFileErr != nil && !os.IsNotExist(envFileErr) {
		cfg.Log.Warn("Failed to read .env file", "error", envFileErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects to Redis only when an address is configured.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		cfg.Log.Info("Redis not configured, using in-memory stores")
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}
	if cfg.RedisDB < 0 {
		errors = append(errors, fmt.Sprintf("RedisDB cannot be negative, got: %d", cfg.RedisDB))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		errors = append(errors, fmt.Sprintf("Timezone must be a valid IANA name, got: %s", cfg.Timezone))
	} else {
		cfg.Location = loc
	}

	positive := map[string]time.Duration{
		"MongoConnTimeout":    cfg.MongoConnTimeout,
		"RateLimitWindow":     cfg.RateLimitWindow,
		"RequestTimeout":      cfg.RequestTimeout,
		"IdempotencyTTL":      cfg.IdempotencyTTL,
		"ReadTimeout":         cfg.ReadTimeout,
		"WriteTimeout":        cfg.WriteTimeout,
		"IdleTimeout":         cfg.IdleTimeout,
		"ShutdownTimeout":     cfg.ShutdownTimeout,
		"UpstreamTimeout":     cfg.UpstreamTimeout,
		"JWTTTL":              cfg.JWTTTL,
		"ConciergeSessionTTL": cfg.ConciergeSessionTTL,
	}
	for _, name := range sortedKeys(positive) {
		if positive[name] <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", name, positive[name]))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.UpstreamRPS < 0 {
		errors = append(errors, fmt.Sprintf("UpstreamRPS cannot be negative, got: %d", cfg.UpstreamRPS))
	}
	if cfg.ConciergeHistoryLimit <= 0 {
		errors = append(errors, fmt.Sprintf("ConciergeHistoryLimit must be positive, got: %d", cfg.ConciergeHistoryLimit))
	}
	if !strings.HasPrefix(cfg.SerpApiBaseURL, "http://") && !strings.HasPrefix(cfg.SerpApiBaseURL, "https://") {
		errors = append(errors, fmt.Sprintf("SerpApiBaseURL must be an http(s) URL, got: %s", cfg.SerpApiBaseURL))
	}

	switch cfg.ChatProvider {
	case ChatProviderGroq, ChatProviderGemini:
	default:
		errors = append(errors, fmt.Sprintf("ChatProvider must be one of [%s %s], got: %s", ChatProviderGroq, ChatProviderGemini, cfg.ChatProvider))
	}

	if len(cfg.JWTSecret) < 16 {
		errors = append(errors, "JWTSecret must be at least 16 characters")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// ChatConfigured reports whether the selected chat provider has credentials.
func (cfg *Config) ChatConfigured() bool {
	switch cfg.ChatProvider {
	case ChatProviderGemini:
		return cfg.GeminiAPIKey != ""
	default:
		return cfg.GroqAPIKey != ""
	}
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"redis_addr", cfg.RedisAddr,
		"redis_db", cfg.RedisDB,
		"port", cfg.Port,
		"timezone", cfg.Timezone,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"serpapi_base_url", cfg.SerpApiBaseURL,
		"serpapi_key_set", cfg.SerpApiKey != "",
		"hotels_locale", cfg.HotelsCurrency+"/"+cfg.HotelsCountry+"/"+cfg.HotelsLanguage,
		"upstream_timeout", cfg.UpstreamTimeout,
		"upstream_rps", cfg.UpstreamRPS,
		"chat_provider", cfg.ChatProvider,
		"chat_configured", cfg.ChatConfigured(),
		"jwt_ttl", cfg.JWTTTL,
		"jwt_default_secret", cfg.JWTSecret == DefaultJWTSecret,
		"concierge_session_ttl", cfg.ConciergeSessionTTL,
		"concierge_history_limit", cfg.ConciergeHistoryLimit,
		"demo_user_enabled", cfg.DemoUserEnabled,
	)
	if cfg.SerpApiKey == "" {
		cfg.Log.Warn("SERPAPI_KEY is not set, hotel search will be unavailable")
	}
	if !cfg.ChatConfigured() {
		cfg.Log.Warn("Chat provider has no API key, chat will be unavailable", "provider", cfg.ChatProvider)
	}
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func sortedKeys(m map[string]time.Duration) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
