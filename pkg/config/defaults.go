package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "luxestay"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRedisDB = 0

	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultTimezone  = "Local"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 35 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSerpApiBaseURL  = "https://serpapi.com/search.json"
	DefaultHotelsCurrency  = "INR"
	DefaultHotelsCountry   = "in"
	DefaultHotelsLanguage  = "en"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultUpstreamRPS     = 5

	ChatProviderGroq   = "groq"
	ChatProviderGemini = "gemini"

	DefaultChatProvider = ChatProviderGroq
	DefaultGroqBaseURL  = "https://api.groq.com/openai/v1"
	DefaultGroqModel    = "llama-3.3-70b-versatile"
	DefaultGeminiModel  = "gemini-1.5-flash"

	DefaultJWTSecret = "luxestay-development-secret"
	DefaultJWTTTL    = 24 * time.Hour

	DefaultConciergeSessionTTL   = 2 * time.Hour
	DefaultConciergeHistoryLimit = 20

	DefaultDemoUserEnabled = true
)
