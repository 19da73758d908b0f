package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/sandeepkv93/notes-ai-backend/internal/config"
	"github.com/sandeepkv93/notes-ai-backend/internal/database"
	"github.com/sandeepkv93/notes-ai-backend/internal/health"
	"github.com/sandeepkv93/notes-ai-backend/internal/jobs"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
	Jobs          *jobs.Client
	Sweeper       *service.CodeSweeper
	Readiness     *health.ProbeRunner
}

func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	jobClient *jobs.Client,
	sweeper *service.CodeSweeper,
	readiness *health.ProbeRunner,
) *App {
	return &App{
		Config:        cfg,
		Logger:        logger,
		Server:        server,
		Observability: runtime,
		DB:            db,
		Redis:         redisClient,
		Jobs:          jobClient,
		Sweeper:       sweeper,
		Readiness:     readiness,
	}
}

// Run serves HTTP and runs the code sweeper until ctx is cancelled or one of
// them fails, then shuts everything down in stages.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if a.Sweeper != nil {
		g.Go(func() error { return a.Sweeper.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		a.drainHTTP()
		return nil
	})

	err := g.Wait()
	a.release()
	return err
}

func (a *App) drainHTTP() {
	timeout := a.Config.ShutdownHTTPDrainTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := a.Server.Shutdown(ctx); err != nil {
		a.Logger.Error("failed to shutdown http server", "error", err)
	}
}

func (a *App) release() {
	if a.Observability != nil {
		timeout := a.Config.ShutdownObservabilityTimeout
		if timeout <= 0 {
			timeout = 8 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		if err := a.Observability.Shutdown(ctx); err != nil {
			a.Logger.Error("failed to shutdown observability", "error", err)
		}
		cancel()
	}
	if a.Jobs != nil {
		if err := a.Jobs.Close(); err != nil {
			a.Logger.Error("failed to close job client", "error", err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("failed to close redis client", "error", err)
		}
	}
	if err := database.Close(a.DB); err != nil {
		a.Logger.Error("failed to close database connection", "error", err)
	}
	a.Logger.Info("shutdown complete")
}
