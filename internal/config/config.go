package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"postgres"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`

	JWTSecret          string        `envconfig:"JWT_SECRET"`
	JWTIssuer          string        `envconfig:"JWT_ISSUER" default:"notes-ai-backend"`
	JWTTTL             time.Duration `envconfig:"JWT_TTL" default:"24h"`
	CookieName         string        `envconfig:"COOKIE_NAME" default:"token"`
	CookieMaxAge       time.Duration `envconfig:"COOKIE_MAX_AGE" default:"72h"`
	CookieDomain       string        `envconfig:"COOKIE_DOMAIN"`
	CookieSecure       bool          `envconfig:"COOKIE_SECURE" default:"true"`
	CookieSameSite     string        `envconfig:"COOKIE_SAMESITE" default:"none"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`

	OTPLength           int           `envconfig:"OTP_LENGTH" default:"6"`
	OTPTTL              time.Duration `envconfig:"OTP_TTL" default:"5m"`
	OTPStore            string        `envconfig:"OTP_STORE" default:"database"`
	OTPSweepInterval    time.Duration `envconfig:"OTP_SWEEP_INTERVAL" default:"1m"`
	OTPExposeInResponse bool          `envconfig:"OTP_EXPOSE_IN_RESPONSE" default:"false"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	MailDispatchMode  string `envconfig:"MAIL_DISPATCH_MODE" default:"log"`
	MailHost          string `envconfig:"MAIL_HOST"`
	MailPort          int    `envconfig:"MAIL_PORT" default:"587"`
	MailUser          string `envconfig:"MAIL_USER"`
	MailPass          string `envconfig:"MAIL_PASS"`
	MailFrom          string `envconfig:"MAIL_FROM" default:"Notes <no-reply@notes.local>"`
	WorkerConcurrency int    `envconfig:"WORKER_CONCURRENCY" default:"5"`
	WorkerPurgeCron   string `envconfig:"WORKER_PURGE_CRON"`

	LLMAPIKey        string        `envconfig:"LLM_API_KEY"`
	LLMBaseURL       string        `envconfig:"LLM_BASE_URL" default:"https://api.groq.com/openai"`
	LLMModel         string        `envconfig:"LLM_MODEL" default:"llama-3.1-8b-instant"`
	LLMTimeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`
	LLMMaxConcurrent int           `envconfig:"LLM_MAX_CONCURRENT" default:"5"`
	AIRequireAuth    bool          `envconfig:"AI_REQUIRE_AUTH" default:"true"`

	AuthRateLimitPerMin int   `envconfig:"AUTH_RATE_LIMIT_PER_MIN" default:"30"`
	APIRateLimitPerMin  int   `envconfig:"API_RATE_LIMIT_PER_MIN" default:"120"`
	MaxBodyBytes        int64 `envconfig:"HTTP_MAX_BODY_BYTES" default:"1048576"`

	ReadinessProbeTimeout        time.Duration `envconfig:"READINESS_PROBE_TIMEOUT" default:"1s"`
	ShutdownTimeout              time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"20s"`
	ShutdownHTTPDrainTimeout     time.Duration `envconfig:"SHUTDOWN_HTTP_DRAIN_TIMEOUT" default:"10s"`
	ShutdownObservabilityTimeout time.Duration `envconfig:"SHUTDOWN_OBSERVABILITY_TIMEOUT" default:"8s"`

	OTELServiceName           string        `envconfig:"OTEL_SERVICE_NAME" default:"notes-ai-backend"`
	OTELEnvironment           string        `envconfig:"OTEL_ENVIRONMENT"`
	OTELExporterOTLPEndpoint  string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	OTELExporterOTLPInsecure  bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	OTELMetricsExportInterval time.Duration `envconfig:"OTEL_METRICS_EXPORT_INTERVAL" default:"10s"`
	OTELTraceSamplingRatio    float64       `envconfig:"OTEL_TRACE_SAMPLING_RATIO" default:"1.0"`
	OTELMetricsEnabled        bool          `envconfig:"OTEL_METRICS_ENABLED" default:"false"`
	OTELTracingEnabled        bool          `envconfig:"OTEL_TRACING_ENABLED" default:"false"`
	OTELLogsEnabled           bool          `envconfig:"OTEL_LOGS_ENABLED" default:"false"`
	OTELLogLevel              string        `envconfig:"OTEL_LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.DatabaseDriver = strings.ToLower(strings.TrimSpace(c.DatabaseDriver))
	c.CookieSameSite = strings.ToLower(strings.TrimSpace(c.CookieSameSite))
	c.OTPStore = strings.ToLower(strings.TrimSpace(c.OTPStore))
	c.MailDispatchMode = strings.ToLower(strings.TrimSpace(c.MailDispatchMode))
	c.OTELLogLevel = strings.ToLower(strings.TrimSpace(c.OTELLogLevel))
	c.LLMBaseURL = strings.TrimRight(c.LLMBaseURL, "/")
	if c.OTELEnvironment == "" {
		c.OTELEnvironment = c.Env
	}
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if trim := strings.TrimSpace(o); trim != "" {
			origins = append(origins, trim)
		}
	}
	c.CORSAllowedOrigins = origins
}

func (c *Config) Validate() error {
	var errs []string
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, "DATABASE_DRIVER must be one of postgres, sqlite")
	}
	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 chars")
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, "JWT_TTL must be > 0")
	}
	if c.CookieName == "" {
		errs = append(errs, "COOKIE_NAME is required")
	}
	if c.CookieMaxAge <= 0 {
		errs = append(errs, "COOKIE_MAX_AGE must be > 0")
	}
	if !isValidSameSite(c.CookieSameSite) {
		errs = append(errs, "COOKIE_SAMESITE must be one of lax, strict, none")
	}
	if c.OTPLength < 4 || c.OTPLength > 10 {
		errs = append(errs, "OTP_LENGTH must be between 4 and 10")
	}
	if c.OTPTTL <= 0 {
		errs = append(errs, "OTP_TTL must be > 0")
	}
	switch c.OTPStore {
	case "database":
	case "redis":
		if c.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required when OTP_STORE=redis")
		}
	default:
		errs = append(errs, "OTP_STORE must be one of database, redis")
	}
	if c.OTPSweepInterval < 0 {
		errs = append(errs, "OTP_SWEEP_INTERVAL must be >= 0")
	}
	switch c.MailDispatchMode {
	case "log":
	case "smtp":
		if c.MailHost == "" {
			errs = append(errs, "MAIL_HOST is required when MAIL_DISPATCH_MODE=smtp")
		}
	case "queue":
		if c.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required when MAIL_DISPATCH_MODE=queue")
		}
	default:
		errs = append(errs, "MAIL_DISPATCH_MODE must be one of log, smtp, queue")
	}
	if c.LLMTimeout <= 0 {
		errs = append(errs, "LLM_TIMEOUT must be > 0")
	}
	if c.LLMMaxConcurrent <= 0 {
		errs = append(errs, "LLM_MAX_CONCURRENT must be > 0")
	}
	if c.AuthRateLimitPerMin <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.APIRateLimitPerMin <= 0 {
		errs = append(errs, "API_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, "HTTP_MAX_BODY_BYTES must be > 0")
	}
	if c.ReadinessProbeTimeout <= 0 {
		errs = append(errs, "READINESS_PROBE_TIMEOUT must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be > 0")
	}
	if c.ShutdownHTTPDrainTimeout <= 0 || c.ShutdownHTTPDrainTimeout > c.ShutdownTimeout {
		errs = append(errs, "SHUTDOWN_HTTP_DRAIN_TIMEOUT must be > 0 and <= SHUTDOWN_TIMEOUT")
	}
	if c.ShutdownObservabilityTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_OBSERVABILITY_TIMEOUT must be > 0")
	}
	if (c.OTELMetricsEnabled || c.OTELTracingEnabled || c.OTELLogsEnabled) && c.OTELExporterOTLPEndpoint == "" {
		errs = append(errs, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTel is enabled")
	}
	if c.OTELTraceSamplingRatio < 0 || c.OTELTraceSamplingRatio > 1 {
		errs = append(errs, "OTEL_TRACE_SAMPLING_RATIO must be between 0 and 1")
	}
	if c.OTELMetricsExportInterval <= 0 {
		errs = append(errs, "OTEL_METRICS_EXPORT_INTERVAL must be > 0")
	}
	if !isValidLogLevel(c.OTELLogLevel) {
		errs = append(errs, "OTEL_LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.IsProduction() {
		if !c.CookieSecure {
			errs = append(errs, "COOKIE_SECURE must be true in production")
		}
		if c.OTPExposeInResponse {
			errs = append(errs, "OTP_EXPOSE_IN_RESPONSE must be false in production")
		}
		if c.MailDispatchMode == "log" {
			errs = append(errs, "MAIL_DISPATCH_MODE=log is not allowed in production")
		}
		if c.DatabaseDriver == "sqlite" {
			errs = append(errs, "DATABASE_DRIVER=sqlite is not allowed in production")
		}
	}
	if c.CookieSameSite == "none" && !c.CookieSecure && !isLocalLikeEnv(c.Env) {
		errs = append(errs, "COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "production", "prod":
		return true
	default:
		return false
	}
}

func isLocalLikeEnv(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev", "local", "test":
		return true
	default:
		return false
	}
}

func isValidSameSite(v string) bool {
	switch v {
	case "lax", "strict", "none":
		return true
	default:
		return false
	}
}

func isValidLogLevel(v string) bool {
	switch strings.ToLower(v) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
