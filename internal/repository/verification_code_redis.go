package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

const (
	verificationCodeKeyPrefix = "verification_code:"
	verificationCodeKeepLast  = 10
)

// RedisVerificationCodeRepository keeps a newest-first list per email.
// The key TTL is refreshed on every push so the list disappears once the
// newest code has aged out; reads still re-check the age of the head entry.
type RedisVerificationCodeRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisVerificationCodeRepository(client redis.UniversalClient, ttl time.Duration) *RedisVerificationCodeRepository {
	return &RedisVerificationCodeRepository{client: client, ttl: ttl}
}

func (r *RedisVerificationCodeRepository) Create(ctx context.Context, code *domain.VerificationCode) error {
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	key := verificationCodeKey(code.Email)
	entry := code.Code + "|" + strconv.FormatInt(code.CreatedAt.UnixNano(), 10)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, entry)
		pipe.LTrim(ctx, key, 0, verificationCodeKeepLast-1)
		pipe.PExpire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		observability.RecordRepositoryOperation(ctx, "verification_code", "create", "error")
		return fmt.Errorf("store verification code: %w", err)
	}
	observability.RecordRepositoryOperation(ctx, "verification_code", "create", "success")
	return nil
}

func (r *RedisVerificationCodeRepository) FindLatest(ctx context.Context, email string, now time.Time) (*domain.VerificationCode, error) {
	raw, err := r.client.LIndex(ctx, verificationCodeKey(email), 0).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "not_found")
			return nil, ErrVerificationCodeNotFound
		}
		observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "error")
		return nil, err
	}
	code, createdAt, err := decodeVerificationEntry(raw)
	if err != nil {
		observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "error")
		return nil, err
	}
	if !createdAt.After(now.Add(-r.ttl)) {
		observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "not_found")
		return nil, ErrVerificationCodeNotFound
	}
	observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "success")
	return &domain.VerificationCode{Email: email, Code: code, CreatedAt: createdAt}, nil
}

// PurgeExpired is a no-op; Redis expires keys natively.
func (r *RedisVerificationCodeRepository) PurgeExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func verificationCodeKey(email string) string {
	return verificationCodeKeyPrefix + email
}

func decodeVerificationEntry(raw string) (string, time.Time, error) {
	code, ts, ok := strings.Cut(raw, "|")
	if !ok {
		return "", time.Time{}, fmt.Errorf("malformed verification code entry")
	}
	nanos, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed verification code timestamp: %w", err)
	}
	return code, time.Unix(0, nanos), nil
}
