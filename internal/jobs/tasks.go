package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

const (
	// QueueDefault is the only queue this service uses.
	QueueDefault = "default"
	// TaskTypeSendVerificationCode delivers a signup code by mail.
	TaskTypeSendVerificationCode = "mail:verification_code"
	// TaskTypePurgeVerificationCodes removes expired codes from the database store.
	TaskTypePurgeVerificationCodes = "codes:purge"
)

func NewVerificationCodeTask(msg service.VerificationCodeMessage) (*asynq.Task, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendVerificationCode, data,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	), nil
}

func NewPurgeVerificationCodesTask() *asynq.Task {
	return asynq.NewTask(TaskTypePurgeVerificationCodes, nil, asynq.MaxRetry(0))
}

// NewVerificationCodeHandler sends queued codes through notifier. Malformed
// payloads and codes that expired while queued are dropped without retry.
func NewVerificationCodeHandler(notifier service.CodeNotifier, logger *slog.Logger) asynq.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, t *asynq.Task) error {
		var msg service.VerificationCodeMessage
		if err := json.Unmarshal(t.Payload(), &msg); err != nil {
			return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		if msg.Email == "" || msg.Code == "" {
			return fmt.Errorf("incomplete %s payload: %w", t.Type(), asynq.SkipRetry)
		}
		if !msg.ExpiresAt.IsZero() && time.Now().After(msg.ExpiresAt) {
			logger.WarnContext(ctx, "dropping expired verification code", "email", msg.Email, "expires_at", msg.ExpiresAt)
			return nil
		}
		return notifier.SendVerificationCode(ctx, msg)
	}
}

// Purger is satisfied by service.CodeSweeper.
type Purger interface {
	PurgeOnce(ctx context.Context) (int64, error)
}

func NewPurgeVerificationCodesHandler(purger Purger, logger *slog.Logger) asynq.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, _ *asynq.Task) error {
		deleted, err := purger.PurgeOnce(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "verification code purge executed", "job", TaskTypePurgeVerificationCodes, "deleted", deleted)
		return nil
	}
}
