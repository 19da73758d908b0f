package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/mail"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock_test.go -package=service

type VerificationCodeMessage struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CodeNotifier interface {
	SendVerificationCode(ctx context.Context, msg VerificationCodeMessage) error
}

// LogCodeNotifier writes the code to the application log. Local use only;
// config validation refuses it in production.
type LogCodeNotifier struct {
	logger *slog.Logger
}

func NewLogCodeNotifier(logger *slog.Logger) *LogCodeNotifier {
	return &LogCodeNotifier{logger: logger}
}

func (n *LogCodeNotifier) SendVerificationCode(ctx context.Context, msg VerificationCodeMessage) error {
	n.logger.InfoContext(ctx, "verification code issued",
		"email", msg.Email,
		"code", msg.Code,
		"expires_at", msg.ExpiresAt,
	)
	observability.RecordMailDispatch(ctx, "log", "success")
	return nil
}

type MailCodeNotifier struct {
	sender mail.Sender
}

func NewMailCodeNotifier(sender mail.Sender) *MailCodeNotifier {
	return &MailCodeNotifier{sender: sender}
}

func (n *MailCodeNotifier) SendVerificationCode(ctx context.Context, msg VerificationCodeMessage) error {
	ttl := time.Until(msg.ExpiresAt)
	if ttl < 0 {
		ttl = 0
	}
	subject, body, err := mail.VerificationEmail(msg.Code, ttl)
	if err != nil {
		return err
	}
	if err := n.sender.Send(ctx, msg.Email, subject, body); err != nil {
		observability.RecordMailDispatch(ctx, "smtp", "failure")
		return fmt.Errorf("send verification email: %w", err)
	}
	observability.RecordMailDispatch(ctx, "smtp", "success")
	return nil
}
