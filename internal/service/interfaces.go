package service

import (
	"context"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
)

//go:generate mockgen -destination=gomock/service_mock.go -package=gomock . AuthServiceInterface,NoteServiceInterface,AIServiceInterface
//go:generate mockgen -destination=llm_provider_mock_test.go -package=service github.com/sandeepkv93/notes-ai-backend/internal/llm Provider

type AuthServiceInterface interface {
	InitiateSignup(ctx context.Context, email string) (*SignupChallenge, error)
	CompleteSignup(ctx context.Context, in SignupInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(token string) (*security.Claims, error)
	CurrentAccount(ctx context.Context, accountID uint) (*domain.Account, error)
}

type NoteServiceInterface interface {
	Create(ctx context.Context, ownerID uint, in NoteInput) (*domain.Note, error)
	List(ctx context.Context, ownerID uint, req repository.PageRequest) (repository.PageResult[domain.Note], error)
	ListAll(ctx context.Context, ownerID uint) ([]domain.Note, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Note, error)
	Update(ctx context.Context, ownerID, id uint, in NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type AIServiceInterface interface {
	Summarize(ctx context.Context, description string) (string, error)
	Chat(ctx context.Context, in ChatInput) (string, error)
}
