package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	SRS        SRSConfig        `yaml:"srs"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Queue      QueueConfig      `yaml:"queue"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Redis      RedisConfig      `yaml:"redis"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"deeplisten"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds FSRS scheduling parameters.
type SRSConfig struct {
	DesiredRetention      float64 `yaml:"desired_retention"       env:"SRS_DESIRED_RETENTION"       env-default:"0.9"`
	MaxIntervalDays       int     `yaml:"max_interval_days"       env:"SRS_MAX_INTERVAL"            env-default:"365"`
	EnableFuzz            bool    `yaml:"enable_fuzz"             env:"SRS_ENABLE_FUZZ"             env-default:"false"`
	LearningStepsRaw      string  `yaml:"learning_steps"          env:"SRS_LEARNING_STEPS"          env-default:"1m,10m"`
	RelearningStepsRaw    string  `yaml:"relearning_steps"        env:"SRS_RELEARNING_STEPS"        env-default:"10m"`
	WeightsRaw            string  `yaml:"weights"                 env:"SRS_WEIGHTS"`
	MasteredStabilityDays float64 `yaml:"mastered_stability_days" env:"SRS_MASTERED_STABILITY_DAYS" env-default:"21"`
	FastResponseMs        int     `yaml:"fast_response_ms"        env:"SRS_FAST_RESPONSE_MS"        env-default:"3000"`
	SlowResponseMs        int     `yaml:"slow_response_ms"        env:"SRS_SLOW_RESPONSE_MS"        env-default:"10000"`

	// LearningSteps is parsed from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
	// RelearningSteps is parsed from RelearningStepsRaw during validation.
	RelearningSteps []time.Duration `yaml:"-" env:"-"`
	// Weights is parsed from WeightsRaw during validation; nil means the FSRS defaults.
	Weights []float64 `yaml:"-" env:"-"`
}

// ExtractionConfig holds vocabulary extraction batch sizes.
type ExtractionConfig struct {
	LookupBatchSize int `yaml:"lookup_batch_size" env:"EXTRACTION_LOOKUP_BATCH_SIZE" env-default:"100"`
	WriteBatchSize  int `yaml:"write_batch_size"  env:"EXTRACTION_WRITE_BATCH_SIZE"  env-default:"500"`
}

// QueueConfig holds background job queue settings.
type QueueConfig struct {
	PollInterval     time.Duration `yaml:"poll_interval"      env:"QUEUE_POLL_INTERVAL"      env-default:"5s"`
	JobTimeout       time.Duration `yaml:"job_timeout"        env:"QUEUE_JOB_TIMEOUT"        env-default:"10m"`
	SweepGracePeriod time.Duration `yaml:"sweep_grace_period" env:"QUEUE_SWEEP_GRACE_PERIOD" env-default:"1h"`
}

// DictionaryConfig holds offline dictionary settings.
// An empty StarDictPath disables lookups: every word is created unenriched.
type DictionaryConfig struct {
	StarDictPath string `yaml:"stardict_path" env:"DICT_STARDICT_PATH"`
}

// RedisConfig holds Redis settings used for the lookup cache and completion
// notifications. An empty Addr disables both.
type RedisConfig struct {
	Addr          string        `yaml:"addr"           env:"REDIS_ADDR"`
	Password      string        `yaml:"password"       env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db"             env:"REDIS_DB"             env-default:"0"`
	DialTimeout   time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"5s"`
	CacheTTL      time.Duration `yaml:"cache_ttl"      env:"REDIS_CACHE_TTL"      env-default:"168h"`
	NotifyChannel string        `yaml:"notify_channel" env:"REDIS_NOTIFY_CHANNEL" env-default:"deeplisten.extraction.completed"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// CORSConfig holds Cross-Origin Resource Sharing settings for the player UI.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-caller request limits. Zero disables a limit.
type RateLimitConfig struct {
	ReviewsPerMinute int           `yaml:"reviews_per_minute" env:"RATE_LIMIT_REVIEWS_PER_MINUTE" env-default:"120"`
	ExtractPerMinute int           `yaml:"extract_per_minute" env:"RATE_LIMIT_EXTRACT_PER_MINUTE" env-default:"10"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}
