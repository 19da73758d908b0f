package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
)

type AuthConfig struct {
	CodeLength int
	CodeTTL    time.Duration
	ExposeCode bool
}

type AuthService struct {
	accounts     repository.AccountRepository
	codes        repository.VerificationCodeRepository
	notifier     CodeNotifier
	jwt          *security.JWTManager
	cfg          AuthConfig
	logger       *slog.Logger
	now          func() time.Time
	generateCode func(n int) (string, error)
}

type SignupChallenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"otp,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Code            string
}

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *domain.Account `json:"user"`
}

func NewAuthService(
	accounts repository.AccountRepository,
	codes repository.VerificationCodeRepository,
	notifier CodeNotifier,
	jwt *security.JWTManager,
	cfg AuthConfig,
	logger *slog.Logger,
) *AuthService {
	if cfg.CodeLength <= 0 {
		cfg.CodeLength = 6
	}
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		accounts:     accounts,
		codes:        codes,
		notifier:     notifier,
		jwt:          jwt,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
		generateCode: security.RandomDigits,
	}
}

// InitiateSignup stores a fresh code before dispatching it. A failed dispatch
// leaves the stored code in place; the caller may simply ask again.
func (s *AuthService) InitiateSignup(ctx context.Context, email string) (*SignupChallenge, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		observability.RecordVerificationCodeEvent(ctx, "issue", "invalid_email")
		return nil, err
	}
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		observability.RecordVerificationCodeEvent(ctx, "issue", "conflict")
		return nil, ConflictError(msgAlreadyRegistered)
	}

	code, err := s.generateCode(s.cfg.CodeLength)
	if err != nil {
		return nil, err
	}
	now := s.now()
	record := &domain.VerificationCode{Email: email, Code: code, CreatedAt: now}
	if err := s.codes.Create(ctx, record); err != nil {
		return nil, err
	}
	observability.RecordVerificationCodeEvent(ctx, "issue", "stored")

	challenge := &SignupChallenge{Email: email, ExpiresAt: now.Add(s.cfg.CodeTTL)}
	msg := VerificationCodeMessage{Email: email, Code: code, ExpiresAt: challenge.ExpiresAt}
	dispatchCtx, span := observability.StartSpan(ctx, "auth.dispatch_verification_code")
	err = s.notifier.SendVerificationCode(dispatchCtx, msg)
	observability.EndSpan(span, err)
	if err != nil {
		observability.RecordVerificationCodeEvent(ctx, "dispatch", "failure")
		s.logger.ErrorContext(ctx, "verification code dispatch failed", "email", email, "error", err)
		return nil, DependencyError(msgMailFailed, err)
	}
	observability.RecordVerificationCodeEvent(ctx, "dispatch", "success")

	if s.cfg.ExposeCode {
		challenge.Code = code
	}
	return challenge, nil
}

func (s *AuthService) CompleteSignup(ctx context.Context, in SignupInput) (*domain.Account, error) {
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Code = strings.TrimSpace(in.Code)
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.Code == "" {
		observability.RecordSignup(ctx, "invalid")
		return nil, ValidationError(msgAllFieldsRequired)
	}
	if in.Password != in.ConfirmPassword {
		observability.RecordSignup(ctx, "invalid")
		return nil, ValidationError(msgPasswordMismatch)
	}

	exists, err := s.accounts.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		observability.RecordSignup(ctx, "conflict")
		return nil, ConflictError(msgAccountExists)
	}

	latest, err := s.codes.FindLatest(ctx, in.Email, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrVerificationCodeNotFound) {
			observability.RecordVerificationCodeEvent(ctx, "check", "missing")
			observability.RecordSignup(ctx, "invalid_code")
			return nil, InvalidCodeError(msgInvalidCode)
		}
		return nil, err
	}
	if latest.Code != in.Code {
		observability.RecordVerificationCodeEvent(ctx, "check", "mismatch")
		observability.RecordSignup(ctx, "invalid_code")
		return nil, InvalidCodeError(msgInvalidCode)
	}
	observability.RecordVerificationCodeEvent(ctx, "check", "match")

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	account := &domain.Account{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			observability.RecordSignup(ctx, "conflict")
			return nil, ConflictError(msgAccountExists)
		}
		return nil, err
	}
	observability.RecordSignup(ctx, "success")
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		observability.RecordAuthLogin(ctx, "invalid")
		return nil, ValidationError(msgAllFieldsRequired)
	}
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			observability.RecordAuthLogin(ctx, "not_found")
			return nil, NotFoundError(msgSignupFirst)
		}
		return nil, err
	}
	ok, err := security.VerifyPassword(account.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		observability.RecordAuthLogin(ctx, "failure")
		return nil, UnauthorizedError(msgPasswordIncorrect, nil)
	}

	token, expiresAt, err := s.jwt.SignSession(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateSessionToken(ctx, account.ID, token); err != nil {
		return nil, err
	}
	account.SessionToken = token
	if security.NeedsRehash(account.PasswordHash) {
		s.upgradeHash(ctx, account, password)
	}

	observability.RecordAuthLogin(ctx, "success")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

// upgradeHash is best effort: a failure leaves the legacy hash usable.
func (s *AuthService) upgradeHash(ctx context.Context, account *domain.Account, password string) {
	hash, err := security.HashPassword(password)
	if err != nil {
		s.logger.WarnContext(ctx, "password rehash failed", "account_id", account.ID, "error", err)
		return
	}
	if err := s.accounts.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		s.logger.WarnContext(ctx, "password rehash persist failed", "account_id", account.ID, "error", err)
		return
	}
	account.PasswordHash = hash
}

// VerifyToken is stateless; it never consults the stored session token.
func (s *AuthService) VerifyToken(token string) (*security.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, UnauthorizedError(msgTokenMissing, nil)
	}
	claims, err := s.jwt.ParseSession(token)
	if err != nil {
		return nil, UnauthorizedError(msgTokenInvalid, err)
	}
	return claims, nil
}

func (s *AuthService) CurrentAccount(ctx context.Context, accountID uint) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, NotFoundError(msgAccountNotFound)
		}
		return nil, err
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func validateEmail(email string) error {
	if email == "" {
		return ValidationError(msgEmailRequired)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ValidationError(msgEmailRequired)
	}
	return nil
}
