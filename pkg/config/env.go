package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvTimezone  = "TIMEZONE"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSerpApiKey      = "SERPAPI_KEY"
	EnvSerpApiBaseURL  = "SERPAPI_BASE_URL"
	EnvHotelsCurrency  = "HOTELS_CURRENCY"
	EnvHotelsCountry   = "HOTELS_COUNTRY"
	EnvHotelsLanguage  = "HOTELS_LANGUAGE"
	EnvUpstreamTimeout = "UPSTREAM_TIMEOUT"
	EnvUpstreamRPS     = "UPSTREAM_RATE_LIMIT"

	EnvChatProvider = "CHAT_PROVIDER"
	EnvGroqAPIKey   = "GROQ_API_KEY"
	EnvGroqBaseURL  = "GROQ_BASE_URL"
	EnvGroqModel    = "GROQ_MODEL"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"

	EnvJWTSecret = "JWT_SECRET"
	EnvJWTTTL    = "JWT_TTL"

	EnvConciergeSessionTTL   = "CONCIERGE_SESSION_TTL"
	EnvConciergeHistoryLimit = "CONCIERGE_HISTORY_LIMIT"

	EnvDemoUserEnabled = "DEMO_USER_ENABLED"
)
