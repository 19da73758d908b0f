package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

type recordingNotifier struct {
	got []service.VerificationCodeMessage
	err error
}

func (n *recordingNotifier) SendVerificationCode(_ context.Context, msg service.VerificationCodeMessage) error {
	n.got = append(n.got, msg)
	return n.err
}

type stubPurger struct {
	deleted int64
	err     error
	calls   int
}

func (p *stubPurger) PurgeOnce(context.Context) (int64, error) {
	p.calls++
	return p.deleted, p.err
}

func TestVerificationCodeTaskRoundTrip(t *testing.T) {
	msg := service.VerificationCodeMessage{Email: "ada@example.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute).UTC()}
	task, err := NewVerificationCodeTask(msg)
	require.NoError(t, err)
	require.Equal(t, TaskTypeSendVerificationCode, task.Type())

	notifier := &recordingNotifier{}
	require.NoError(t, NewVerificationCodeHandler(notifier, nil)(context.Background(), task))
	require.Len(t, notifier.got, 1)
	require.Equal(t, "123456", notifier.got[0].Code)
	require.Equal(t, "ada@example.com", notifier.got[0].Email)
}

func TestVerificationCodeHandlerSkipsRetryOnBadPayload(t *testing.T) {
	handler := NewVerificationCodeHandler(&recordingNotifier{}, nil)

	err := handler(context.Background(), asynq.NewTask(TaskTypeSendVerificationCode, []byte("{not json")))
	require.ErrorIs(t, err, asynq.SkipRetry)

	empty, _ := json.Marshal(service.VerificationCodeMessage{Email: "ada@example.com"})
	err = handler(context.Background(), asynq.NewTask(TaskTypeSendVerificationCode, empty))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestVerificationCodeHandlerDropsExpiredCodes(t *testing.T) {
	notifier := &recordingNotifier{}
	task, err := NewVerificationCodeTask(service.VerificationCodeMessage{
		Email: "ada@example.com", Code: "123456", ExpiresAt: time.Now().Add(-time.Second),
	})
	require.NoError(t, err)
	require.NoError(t, NewVerificationCodeHandler(notifier, nil)(context.Background(), task))
	require.Empty(t, notifier.got)
}

func TestVerificationCodeHandlerReturnsRelayErrorForRetry(t *testing.T) {
	relayErr := errors.New("421 try later")
	task, err := NewVerificationCodeTask(service.VerificationCodeMessage{
		Email: "ada@example.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)
	err = NewVerificationCodeHandler(&recordingNotifier{err: relayErr}, nil)(context.Background(), task)
	require.ErrorIs(t, err, relayErr)
	require.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestPurgeVerificationCodesHandler(t *testing.T) {
	purger := &stubPurger{deleted: 3}
	handler := NewPurgeVerificationCodesHandler(purger, nil)
	require.NoError(t, handler(context.Background(), NewPurgeVerificationCodesTask()))
	require.Equal(t, 1, purger.calls)

	purger.err = errors.New("db down")
	require.Error(t, handler(context.Background(), NewPurgeVerificationCodesTask()))
}
