package repository

import (
	"context"
	"errors"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=gomock/repository_mock.go -package=gomock . AccountRepository,VerificationCodeRepository,NoteRepository

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id uint) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateSessionToken(ctx context.Context, id uint, token string) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
}

type GormAccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// Create relies on the unique email index; a concurrent duplicate surfaces
// as ErrAccountExists rather than a driver error.
func (r *GormAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			observability.RecordRepositoryOperation(ctx, "account", "create", "conflict")
			return ErrAccountExists
		}
		observability.RecordRepositoryOperation(ctx, "account", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "account", "create", "success")
	return nil
}

func (r *GormAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, r.translateLookup(ctx, "find_by_id", err)
	}
	observability.RecordRepositoryOperation(ctx, "account", "find_by_id", "success")
	return &account, nil
}

func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, r.translateLookup(ctx, "find_by_email", err)
	}
	observability.RecordRepositoryOperation(ctx, "account", "find_by_email", "success")
	return &account, nil
}

func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "account", "exists_by_email", "error")
		return false, err
	}
	observability.RecordRepositoryOperation(ctx, "account", "exists_by_email", "success")
	return count > 0, nil
}

func (r *GormAccountRepository) UpdateSessionToken(ctx context.Context, id uint, token string) error {
	return r.updateColumn(ctx, "update_session_token", id, "session_token", token)
}

func (r *GormAccountRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return r.updateColumn(ctx, "update_password_hash", id, "password_hash", hash)
}

func (r *GormAccountRepository) updateColumn(ctx context.Context, op string, id uint, column, value string) error {
	res := r.db.WithContext(ctx).Model(&domain.Account{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "account", op, "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "account", op, "not_found")
		return ErrAccountNotFound
	}
	observability.RecordRepositoryOperation(ctx, "account", op, "success")
	return nil
}

func (r *GormAccountRepository) translateLookup(ctx context.Context, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observability.RecordRepositoryOperation(ctx, "account", op, "not_found")
		return ErrAccountNotFound
	}
	observability.RecordRepositoryOperation(ctx, "account", op, "error")
	return err
}
