package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"

	"gorm.io/gorm"
)

var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository stores signup codes. FindLatest only ever
// returns the newest code created within the store's TTL of now.
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *domain.VerificationCode) error
	FindLatest(ctx context.Context, email string, now time.Time) (*domain.VerificationCode, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type GormVerificationCodeRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewVerificationCodeRepository(db *gorm.DB, ttl time.Duration) *GormVerificationCodeRepository {
	return &GormVerificationCodeRepository{db: db, ttl: ttl}
}

func (r *GormVerificationCodeRepository) Create(ctx context.Context, code *domain.VerificationCode) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "verification_code", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "verification_code", "create", "success")
	return nil
}

func (r *GormVerificationCodeRepository) FindLatest(ctx context.Context, email string, now time.Time) (*domain.VerificationCode, error) {
	var code domain.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND created_at > ?", email, now.Add(-r.ttl)).
		Order("created_at desc").
		Order("id desc").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "not_found")
			return nil, ErrVerificationCodeNotFound
		}
		observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "verification_code", "find_latest", "success")
	return &code, nil
}

func (r *GormVerificationCodeRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at <= ?", now.Add(-r.ttl)).Delete(&domain.VerificationCode{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "verification_code", "purge_expired", "error")
		return 0, res.Error
	}
	observability.RecordRepositoryOperation(ctx, "verification_code", "purge_expired", "success")
	return res.RowsAffected, nil
}
