package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type recordingSender struct {
	to, subject, body string
	err               error
}

func (s *recordingSender) Send(_ context.Context, to, subject, body string) error {
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

func TestMailCodeNotifierRendersVerificationEmail(t *testing.T) {
	sender := &recordingSender{}
	n := NewMailCodeNotifier(sender)
	err := n.SendVerificationCode(context.Background(), VerificationCodeMessage{
		Email:     "ada@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sender.to != "ada@example.com" || sender.subject != "Verification Email" {
		t.Fatalf("unexpected envelope to=%q subject=%q", sender.to, sender.subject)
	}
	if !strings.Contains(sender.body, "<h1>Your OTP is: 123456</h1>") {
		t.Fatalf("unexpected body %q", sender.body)
	}
}

func TestMailCodeNotifierWrapsSenderError(t *testing.T) {
	relayErr := errors.New("connection refused")
	n := NewMailCodeNotifier(&recordingSender{err: relayErr})
	err := n.SendVerificationCode(context.Background(), VerificationCodeMessage{Email: "ada@example.com", Code: "1"})
	if !errors.Is(err, relayErr) {
		t.Fatalf("expected wrapped relay error, got %v", err)
	}
}

func TestLogCodeNotifierLogsCode(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogCodeNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))
	if err := n.SendVerificationCode(context.Background(), VerificationCodeMessage{Email: "ada@example.com", Code: "987654"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"code":"987654"`) || !strings.Contains(out, "verification code issued") {
		t.Fatalf("unexpected log output %s", out)
	}
}
