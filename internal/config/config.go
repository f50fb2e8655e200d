package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Frequency FrequencyConfig `yaml:"frequency"`
	Phonics   PhonicsConfig   `yaml:"phonics"`
	Cache     CacheConfig     `yaml:"cache"`
	Database  DatabaseConfig  `yaml:"database"`
	Usage     UsageConfig     `yaml:"usage"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CorpusConfig overrides the embedded phoneme corpora. Empty paths use the
// built-in data.
type CorpusConfig struct {
	ComprehensivePath string `yaml:"comprehensive_path" env:"CORPUS_COMPREHENSIVE_PATH"`
	SamplePath        string `yaml:"sample_path"        env:"CORPUS_SAMPLE_PATH"`
}

// FrequencyConfig overrides the embedded grapheme frequency tables.
type FrequencyConfig struct {
	ComprehensivePath string `yaml:"comprehensive_path" env:"FREQUENCY_COMPREHENSIVE_PATH"`
	LegacyPath        string `yaml:"legacy_path"        env:"FREQUENCY_LEGACY_PATH"`
}

// PhonicsConfig tunes the resolution pipeline.
type PhonicsConfig struct {
	DigraphHint     bool     `yaml:"digraph_hint"     env:"PHONICS_DIGRAPH_HINT"     env-default:"true"`
	ResearchSources []string `yaml:"research_sources" env:"PHONICS_RESEARCH_SOURCES" env-separator:"|"`
}

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig selects and sizes the bundle cache.
type CacheConfig struct {
	Backend string           `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	Size    int              `yaml:"size"    env:"CACHE_SIZE"    env-default:"1024"`
	TTL     time.Duration    `yaml:"ttl"     env:"CACHE_TTL"     env-default:"1h"`
	Redis   RedisCacheConfig `yaml:"redis"`
}

// RedisCacheConfig holds Redis connection settings for the shared cache.
type RedisCacheConfig struct {
	Addr      string `yaml:"addr"       env:"CACHE_REDIS_ADDR"`
	Password  string `yaml:"password"   env:"CACHE_REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"CACHE_REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"CACHE_REDIS_KEY_PREFIX" env-default:"phonics:bundle:"`
}

// DatabaseConfig holds PostgreSQL settings. An empty DSN disables the
// database: usage events go to the log and admin reports are unavailable.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"phonics-backend"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

// UsageConfig controls the asynchronous usage recorder.
type UsageConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"USAGE_ENABLED"        env-default:"true"`
	BufferSize    int           `yaml:"buffer_size"    env:"USAGE_BUFFER_SIZE"    env-default:"1024"`
	BatchSize     int           `yaml:"batch_size"     env:"USAGE_BATCH_SIZE"     env-default:"50"`
	FlushInterval time.Duration `yaml:"flush_interval" env:"USAGE_FLUSH_INTERVAL" env-default:"2s"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the platform
// portal; an empty secret disables authenticated endpoints.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"phonics"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// Enabled reports whether bearer tokens are validated.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig configures per-client limiting of the API routes.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	TrustProxy        bool          `yaml:"trust_proxy"         env:"RATE_LIMIT_TRUST_PROXY"         env-default:"false"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// Trace exporters.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// TracingConfig configures OpenTelemetry.
type TracingConfig struct {
	Exporter    string  `yaml:"exporter"     env:"TRACING_EXPORTER"     env-default:"none"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"phonics-backend"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1.0"`
}
