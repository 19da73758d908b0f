package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sandeepkv93/notes-ai-backend/internal/app"
	"github.com/sandeepkv93/notes-ai-backend/internal/config"
	"github.com/sandeepkv93/notes-ai-backend/internal/database"
	"github.com/sandeepkv93/notes-ai-backend/internal/health"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/handler"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/router"
	"github.com/sandeepkv93/notes-ai-backend/internal/jobs"
	"github.com/sandeepkv93/notes-ai-backend/internal/llm"
	"github.com/sandeepkv93/notes-ai-backend/internal/mail"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideJobClient,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewAccountRepository,
	repository.NewNoteRepository,
	provideVerificationCodeRepository,
)

var SecuritySet = wire.NewSet(
	provideJWTManager,
	provideCookieManager,
)

var ServiceSet = wire.NewSet(
	provideCodeNotifier,
	provideAuthService,
	service.NewNoteService,
	provideLLMProvider,
	provideAIService,
	provideCodeSweeper,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.NoteServiceInterface), new(*service.NoteService)),
	wire.Bind(new(service.AIServiceInterface), new(*service.AIService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewNoteHandler,
	handler.NewAIHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

var WorkerSet = wire.NewSet(
	provideWorkerDB,
	provideSMTPSender,
	provideWorker,
)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	logger := observability.InitLogger(cfg, runtime.LoggerProvider)
	slog.SetDefault(logger)
	return logger
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func needsRedis(cfg *config.Config) bool {
	return cfg.OTPStore == "redis" || cfg.MailDispatchMode == "queue"
}

// provideRedisClient returns nil when nothing in this process talks to Redis.
func provideRedisClient(cfg *config.Config, logger *slog.Logger) redis.UniversalClient {
	if !needsRedis(cfg) {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	observability.InstrumentRedisClient(client, logger)
	return client
}

func asynqRedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

func provideJobClient(cfg *config.Config) *jobs.Client {
	if cfg.MailDispatchMode != "queue" {
		return nil
	}
	return jobs.NewClient(asynqRedisOpt(cfg))
}

func provideVerificationCodeRepository(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) repository.VerificationCodeRepository {
	if cfg.OTPStore == "redis" && redisClient != nil {
		return repository.NewRedisVerificationCodeRepository(redisClient, cfg.OTPTTL)
	}
	return repository.NewVerificationCodeRepository(db, cfg.OTPTTL)
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
}

func provideCookieManager(cfg *config.Config) *security.CookieManager {
	return security.NewCookieManager(cfg.CookieName, cfg.CookieDomain, cfg.CookieSecure, cfg.CookieSameSite, cfg.CookieMaxAge)
}

func smtpConfig(cfg *config.Config) mail.SMTPConfig {
	return mail.SMTPConfig{
		Host: cfg.MailHost,
		Port: cfg.MailPort,
		User: cfg.MailUser,
		Pass: cfg.MailPass,
		From: cfg.MailFrom,
	}
}

func provideCodeNotifier(cfg *config.Config, logger *slog.Logger, jobClient *jobs.Client) service.CodeNotifier {
	switch cfg.MailDispatchMode {
	case "smtp":
		return service.NewMailCodeNotifier(mail.NewSMTPMailer(smtpConfig(cfg), logger))
	case "queue":
		if jobClient != nil {
			return jobs.NewQueueCodeNotifier(jobClient)
		}
	}
	return service.NewLogCodeNotifier(logger)
}

func provideAuthService(
	cfg *config.Config,
	accounts repository.AccountRepository,
	codes repository.VerificationCodeRepository,
	notifier service.CodeNotifier,
	jwt *security.JWTManager,
	logger *slog.Logger,
) *service.AuthService {
	return service.NewAuthService(accounts, codes, notifier, jwt, service.AuthConfig{
		CodeLength: cfg.OTPLength,
		CodeTTL:    cfg.OTPTTL,
		ExposeCode: cfg.OTPExposeInResponse,
	}, logger)
}

func provideLLMProvider(cfg *config.Config, logger *slog.Logger) llm.Provider {
	base := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	return llm.NewResilientProvider(base, llm.ResilientConfig{
		MaxConcurrent: cfg.LLMMaxConcurrent,
		Logger:        logger,
	})
}

func provideAIService(cfg *config.Config, provider llm.Provider, logger *slog.Logger) *service.AIService {
	return service.NewAIService(provider, cfg.LLMModel, logger)
}

// provideCodeSweeper returns nil for the redis store, which expires codes on
// its own, and when the sweep interval is zero.
func provideCodeSweeper(cfg *config.Config, codes repository.VerificationCodeRepository, logger *slog.Logger) *service.CodeSweeper {
	if cfg.OTPStore == "redis" || cfg.OTPSweepInterval <= 0 {
		return nil
	}
	return service.NewCodeSweeper(codes, cfg.OTPSweepInterval, logger)
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	noteHandler *handler.NoteHandler,
	aiHandler *handler.AIHandler,
	authSvc service.AuthServiceInterface,
	readiness *health.ProbeRunner,
	logger *slog.Logger,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:      authHandler,
		NoteHandler:      noteHandler,
		AIHandler:        aiHandler,
		TokenVerifier:    authSvc,
		CookieName:       cfg.CookieName,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		AuthRateLimitRPM: cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:  cfg.APIRateLimitPerMin,
		MaxBodyBytes:     cfg.MaxBodyBytes,
		AIRequireAuth:    cfg.AIRequireAuth,
		Production:       cfg.IsProduction(),
		Readiness:        readiness,
		Logger:           logger,
		EnableOTelHTTP:   cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) *health.ProbeRunner {
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, 0,
		health.NewDBChecker(db),
		health.NewRedisChecker(redisClient),
	)
}

// WorkerRunner is the queue consumer process: it delivers verification mail
// and, when a cron spec is configured, purges expired codes.
type WorkerRunner struct {
	Worker        *jobs.Worker
	DB            *gorm.DB
	Logger        *slog.Logger
	Observability *observability.Runtime
}

func (w *WorkerRunner) Run(ctx context.Context) error {
	err := w.Worker.Run(ctx)
	if cerr := database.Close(w.DB); cerr != nil {
		w.Logger.Error("failed to close database connection", "error", cerr)
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if ferr := w.Observability.Shutdown(flushCtx); ferr != nil {
		w.Logger.Error("failed to shutdown observability", "error", ferr)
	}
	return err
}

func provideWorkerDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.WorkerPurgeCron == "" {
		return nil, nil
	}
	return database.Open(cfg)
}

func provideSMTPSender(cfg *config.Config, logger *slog.Logger) mail.Sender {
	return mail.NewSMTPMailer(smtpConfig(cfg), logger)
}

func provideWorker(
	cfg *config.Config,
	db *gorm.DB,
	sender mail.Sender,
	logger *slog.Logger,
	runtime *observability.Runtime,
) (*WorkerRunner, error) {
	handlers := []jobs.TaskHandler{{
		Type:    jobs.TaskTypeSendVerificationCode,
		Handler: jobs.NewVerificationCodeHandler(service.NewMailCodeNotifier(sender), logger),
	}}
	var cron []jobs.CronRegistration
	if db != nil {
		sweeper := service.NewCodeSweeper(repository.NewVerificationCodeRepository(db, cfg.OTPTTL), time.Minute, logger)
		handlers = append(handlers, jobs.TaskHandler{
			Type:    jobs.TaskTypePurgeVerificationCodes,
			Handler: jobs.NewPurgeVerificationCodesHandler(sweeper, logger),
		})
		cron = append(cron, jobs.CronRegistration{Spec: cfg.WorkerPurgeCron, Task: jobs.NewPurgeVerificationCodesTask()})
	}
	w, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   asynqRedisOpt(cfg),
		Concurrency: cfg.WorkerConcurrency,
		Logger:      logger,
		Handlers:    handlers,
		Cron:        cron,
	})
	if err != nil {
		return nil, err
	}
	return &WorkerRunner{Worker: w, DB: db, Logger: logger, Observability: runtime}, nil
}
