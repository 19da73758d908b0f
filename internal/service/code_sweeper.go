package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
)

// CodeSweeper removes expired verification codes from stores that lack a
// native TTL. Reads already ignore expired rows; this only reclaims space.
type CodeSweeper struct {
	codes    repository.VerificationCodeRepository
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewCodeSweeper(codes repository.VerificationCodeRepository, interval time.Duration, logger *slog.Logger) *CodeSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CodeSweeper{
		codes:    codes,
		interval: interval,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CodeSweeper) PurgeOnce(ctx context.Context) (int64, error) {
	deleted, err := s.codes.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	observability.RecordVerificationCodesPurged(ctx, deleted)
	return deleted, nil
}

// Run blocks until ctx is cancelled. Failed sweeps are logged and retried on
// the next tick.
func (s *CodeSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			deleted, err := s.PurgeOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.WarnContext(ctx, "verification code sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				s.logger.InfoContext(ctx, "verification code sweep removed expired codes", "deleted", deleted)
			}
		}
	}
}
