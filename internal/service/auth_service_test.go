package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	repogomock "github.com/sandeepkv93/notes-ai-backend/internal/repository/gomock"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
)

const (
	testSecret = "test-secret-with-enough-entropy-0123456789"
	testIssuer = "notes-ai-backend"
)

type authFixture struct {
	auth     *AuthService
	accounts repository.AccountRepository
	codes    *repository.GormVerificationCodeRepository
	notifier *MockCodeNotifier
	jwt      *security.JWTManager
	clock    *fakeClock
	sent     []VerificationCodeMessage
}

func newAuthFixture(t *testing.T, cfg AuthConfig) *authFixture {
	t.Helper()
	db := newServiceDBForTest(t)
	ctrl := gomock.NewController(t)

	fx := &authFixture{
		accounts: repository.NewAccountRepository(db),
		codes:    repository.NewVerificationCodeRepository(db, 5*time.Minute),
		notifier: NewMockCodeNotifier(ctrl),
		jwt:      security.NewJWTManager(testSecret, testIssuer, 24*time.Hour),
		clock:    newFakeClock(),
	}
	fx.notifier.EXPECT().SendVerificationCode(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, msg VerificationCodeMessage) error {
			fx.sent = append(fx.sent, msg)
			return nil
		})
	fx.auth = NewAuthService(fx.accounts, fx.codes, fx.notifier, fx.jwt, cfg, nil)
	fx.auth.now = fx.clock.Now
	return fx
}

func (fx *authFixture) lastCode(t *testing.T) string {
	t.Helper()
	if len(fx.sent) == 0 {
		t.Fatal("no verification code was dispatched")
	}
	return fx.sent[len(fx.sent)-1].Code
}

func (fx *authFixture) signup(t *testing.T, email, password string) *domain.Account {
	t.Helper()
	if _, err := fx.auth.InitiateSignup(context.Background(), email); err != nil {
		t.Fatalf("initiate signup: %v", err)
	}
	account, err := fx.auth.CompleteSignup(context.Background(), SignupInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Code:            fx.lastCode(t),
	})
	if err != nil {
		t.Fatalf("complete signup: %v", err)
	}
	return account
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func TestAuthServiceInitiateSignupMatrix(t *testing.T) {
	t.Run("rejects implausible email", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		for _, email := range []string{"", "   ", "not-an-email", "ada@localhost", "Ada <ada@example.com>"} {
			_, err := fx.auth.InitiateSignup(context.Background(), email)
			assertKind(t, err, KindValidation)
			if MessageOf(err) != msgEmailRequired {
				t.Fatalf("unexpected message %q for %q", MessageOf(err), email)
			}
		}
		if len(fx.sent) != 0 {
			t.Fatal("no code should be dispatched for invalid email")
		}
	})

	t.Run("stores and dispatches without exposing code", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		challenge, err := fx.auth.InitiateSignup(context.Background(), "  ada@example.com ")
		if err != nil {
			t.Fatalf("initiate: %v", err)
		}
		if challenge.Code != "" {
			t.Fatal("code must not be returned unless exposure is enabled")
		}
		if challenge.Email != "ada@example.com" {
			t.Fatalf("expected trimmed email, got %q", challenge.Email)
		}
		if !challenge.ExpiresAt.Equal(fx.clock.Now().Add(5 * time.Minute)) {
			t.Fatalf("unexpected expiry %v", challenge.ExpiresAt)
		}
		code := fx.lastCode(t)
		if len(code) != 6 {
			t.Fatalf("expected 6 digit code, got %q", code)
		}
		stored, err := fx.codes.FindLatest(context.Background(), "ada@example.com", fx.clock.Now())
		if err != nil {
			t.Fatalf("find stored code: %v", err)
		}
		if stored.Code != code {
			t.Fatalf("stored code %q does not match dispatched %q", stored.Code, code)
		}
	})

	t.Run("exposes code when configured", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{ExposeCode: true})
		challenge, err := fx.auth.InitiateSignup(context.Background(), "ada@example.com")
		if err != nil {
			t.Fatalf("initiate: %v", err)
		}
		if challenge.Code == "" || challenge.Code != fx.lastCode(t) {
			t.Fatalf("expected exposed code to match dispatched one, got %q", challenge.Code)
		}
	})

	t.Run("conflict when account exists", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.signup(t, "ada@example.com", "correct horse")
		sentBefore := len(fx.sent)

		_, err := fx.auth.InitiateSignup(context.Background(), "ada@example.com")
		assertKind(t, err, KindConflict)
		if MessageOf(err) != msgAlreadyRegistered {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
		if len(fx.sent) != sentBefore {
			t.Fatal("no code should be dispatched for an existing account")
		}
	})

	t.Run("dispatch failure keeps stored code", func(t *testing.T) {
		db := newServiceDBForTest(t)
		ctrl := gomock.NewController(t)
		notifier := NewMockCodeNotifier(ctrl)
		notifier.EXPECT().SendVerificationCode(gomock.Any(), gomock.Any()).Return(errors.New("relay down"))
		codes := repository.NewVerificationCodeRepository(db, 5*time.Minute)
		auth := NewAuthService(repository.NewAccountRepository(db), codes, notifier,
			security.NewJWTManager(testSecret, testIssuer, 24*time.Hour), AuthConfig{}, nil)
		auth.generateCode = sequenceCodes("424242")

		_, err := auth.InitiateSignup(context.Background(), "ada@example.com")
		assertKind(t, err, KindDependency)
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected errors.Is ErrDependency, got %v", err)
		}
		stored, err := codes.FindLatest(context.Background(), "ada@example.com", time.Now().UTC())
		if err != nil {
			t.Fatalf("code should survive dispatch failure: %v", err)
		}
		if stored.Code != "424242" {
			t.Fatalf("unexpected stored code %q", stored.Code)
		}
	})
}

func TestAuthServiceDoubleInitiateOnlyNewestAccepted(t *testing.T) {
	fx := newAuthFixture(t, AuthConfig{})
	fx.auth.generateCode = sequenceCodes("111111", "222222")

	if _, err := fx.auth.InitiateSignup(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("first initiate: %v", err)
	}
	fx.clock.Advance(time.Second)
	if _, err := fx.auth.InitiateSignup(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("second initiate: %v", err)
	}
	if len(fx.sent) != 2 {
		t.Fatalf("expected two dispatched codes, got %d", len(fx.sent))
	}

	in := SignupInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"}

	in.Code = "111111"
	_, err := fx.auth.CompleteSignup(context.Background(), in)
	assertKind(t, err, KindInvalidCode)

	in.Code = "222222"
	if _, err := fx.auth.CompleteSignup(context.Background(), in); err != nil {
		t.Fatalf("newest code should be accepted: %v", err)
	}
}

func TestAuthServiceCompleteSignupMatrix(t *testing.T) {
	base := SignupInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "pw-1", ConfirmPassword: "pw-1", Code: "123456"}

	t.Run("missing fields", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		mutations := map[string]func(*SignupInput){
			"first name": func(in *SignupInput) { in.FirstName = " " },
			"last name":  func(in *SignupInput) { in.LastName = "" },
			"email":      func(in *SignupInput) { in.Email = "" },
			"password":   func(in *SignupInput) { in.Password = "" },
			"confirm":    func(in *SignupInput) { in.ConfirmPassword = "" },
			"code":       func(in *SignupInput) { in.Code = "" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				in := base
				mutate(&in)
				_, err := fx.auth.CompleteSignup(context.Background(), in)
				assertKind(t, err, KindValidation)
				if MessageOf(err) != msgAllFieldsRequired {
					t.Fatalf("unexpected message %q", MessageOf(err))
				}
			})
		}
	})

	t.Run("password mismatch creates nothing", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.auth.generateCode = sequenceCodes("123456")
		if _, err := fx.auth.InitiateSignup(context.Background(), base.Email); err != nil {
			t.Fatalf("initiate: %v", err)
		}
		in := base
		in.ConfirmPassword = "something else"
		_, err := fx.auth.CompleteSignup(context.Background(), in)
		assertKind(t, err, KindValidation)
		if MessageOf(err) != msgPasswordMismatch {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
		exists, err := fx.accounts.ExistsByEmail(context.Background(), base.Email)
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if exists {
			t.Fatal("account must not be created on password mismatch")
		}
	})

	t.Run("no code issued", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		_, err := fx.auth.CompleteSignup(context.Background(), base)
		assertKind(t, err, KindInvalidCode)
		if MessageOf(err) != msgInvalidCode {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
	})

	t.Run("wrong code", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.auth.generateCode = sequenceCodes("654321")
		if _, err := fx.auth.InitiateSignup(context.Background(), base.Email); err != nil {
			t.Fatalf("initiate: %v", err)
		}
		_, err := fx.auth.CompleteSignup(context.Background(), base)
		assertKind(t, err, KindInvalidCode)
	})

	t.Run("code within five minutes accepted", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.auth.generateCode = sequenceCodes("123456")
		if _, err := fx.auth.InitiateSignup(context.Background(), base.Email); err != nil {
			t.Fatalf("initiate: %v", err)
		}
		fx.clock.Advance(4*time.Minute + 59*time.Second)
		account, err := fx.auth.CompleteSignup(context.Background(), base)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if account.ID == 0 || account.SessionToken != "" {
			t.Fatalf("expected persisted account without session token, got %+v", account)
		}
		if account.PasswordHash == base.Password || !strings.HasPrefix(account.PasswordHash, "$argon2id$") {
			t.Fatal("expected salted argon2id hash")
		}
	})

	t.Run("code older than five minutes never authoritative", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.auth.generateCode = sequenceCodes("123456")
		if _, err := fx.auth.InitiateSignup(context.Background(), base.Email); err != nil {
			t.Fatalf("initiate: %v", err)
		}
		for _, elapsed := range []time.Duration{5 * time.Minute, 5*time.Minute + time.Second, time.Hour} {
			clock := newFakeClock()
			clock.Advance(elapsed)
			fx.auth.now = clock.Now
			_, err := fx.auth.CompleteSignup(context.Background(), base)
			assertKind(t, err, KindInvalidCode)
		}
	})
}

func TestAuthServiceDuplicateAccountAlwaysRejected(t *testing.T) {
	t.Run("second signup after success", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.auth.generateCode = sequenceCodes("123456")
		fx.signup(t, "ada@example.com", "pw")

		_, err := fx.auth.CompleteSignup(context.Background(), SignupInput{
			FirstName: "Ada", LastName: "Again", Email: "ada@example.com",
			Password: "pw2", ConfirmPassword: "pw2", Code: "123456",
		})
		assertKind(t, err, KindConflict)
		if MessageOf(err) != msgAccountExists {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
	})

	t.Run("concurrent create loses the unique index race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := repogomock.NewMockAccountRepository(ctrl)
		codes := repogomock.NewMockVerificationCodeRepository(ctrl)
		notifier := NewMockCodeNotifier(ctrl)

		accounts.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, nil)
		codes.EXPECT().FindLatest(gomock.Any(), "ada@example.com", gomock.Any()).
			Return(&domain.VerificationCode{Email: "ada@example.com", Code: "123456"}, nil)
		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrAccountExists)

		auth := NewAuthService(accounts, codes, notifier, security.NewJWTManager(testSecret, testIssuer, time.Hour), AuthConfig{}, nil)
		_, err := auth.CompleteSignup(context.Background(), SignupInput{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Password: "pw", ConfirmPassword: "pw", Code: "123456",
		})
		assertKind(t, err, KindConflict)
	})
}

func TestAuthServiceLoginMatrix(t *testing.T) {
	t.Run("unknown email asks to sign up", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		_, err := fx.auth.Login(context.Background(), "ghost@example.com", "pw")
		assertKind(t, err, KindNotFound)
		if MessageOf(err) != "Signup first before login." {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		fx.signup(t, "ada@example.com", "right")
		_, err := fx.auth.Login(context.Background(), "ada@example.com", "wrong")
		assertKind(t, err, KindUnauthorized)
		if MessageOf(err) != msgPasswordIncorrect {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
	})

	t.Run("success carries email claim and stores token", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		account := fx.signup(t, "ada@example.com", "right")

		res, err := fx.auth.Login(context.Background(), "ada@example.com", "right")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		claims, err := fx.jwt.ParseSession(res.Token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if claims.Email != "ada@example.com" || claims.AccountID != account.ID {
			t.Fatalf("unexpected claims %+v", claims)
		}
		stored, err := fx.accounts.FindByID(context.Background(), account.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if stored.SessionToken != res.Token {
			t.Fatal("expected session token to be stored on the account")
		}

		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), "argon2id") || strings.Contains(string(raw), "password") {
			t.Fatalf("login result leaks password material: %s", raw)
		}
	})

	t.Run("new login supersedes stored token", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		account := fx.signup(t, "ada@example.com", "right")
		first, err := fx.auth.Login(context.Background(), "ada@example.com", "right")
		if err != nil {
			t.Fatalf("first login: %v", err)
		}
		second, err := fx.auth.Login(context.Background(), "ada@example.com", "right")
		if err != nil {
			t.Fatalf("second login: %v", err)
		}
		if first.Token == second.Token {
			t.Fatal("expected distinct tokens per login")
		}
		stored, err := fx.accounts.FindByID(context.Background(), account.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if stored.SessionToken != second.Token {
			t.Fatal("stored token should be the latest one")
		}
	})

	t.Run("legacy bcrypt hash upgraded on login", func(t *testing.T) {
		fx := newAuthFixture(t, AuthConfig{})
		legacy, err := bcrypt.GenerateFromPassword([]byte("old-pw"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		account := &domain.Account{Email: "old@example.com", FirstName: "Old", LastName: "User", PasswordHash: string(legacy)}
		if err := fx.accounts.Create(context.Background(), account); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := fx.auth.Login(context.Background(), "old@example.com", "old-pw"); err != nil {
			t.Fatalf("login: %v", err)
		}
		stored, err := fx.accounts.FindByID(context.Background(), account.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if !strings.HasPrefix(stored.PasswordHash, "$argon2id$") {
			t.Fatalf("expected upgraded hash, got %q", stored.PasswordHash)
		}
	})
}

func TestAuthServiceVerifyToken(t *testing.T) {
	fx := newAuthFixture(t, AuthConfig{})

	t.Run("missing", func(t *testing.T) {
		_, err := fx.auth.VerifyToken("  ")
		assertKind(t, err, KindUnauthorized)
		if MessageOf(err) != msgTokenMissing {
			t.Fatalf("unexpected message %q", MessageOf(err))
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := fx.auth.VerifyToken("not.a.jwt")
		assertKind(t, err, KindUnauthorized)
		if !errors.Is(err, security.ErrInvalidToken) {
			t.Fatalf("expected wrapped ErrInvalidToken, got %v", err)
		}
	})

	t.Run("older than 24 hours", func(t *testing.T) {
		issued := time.Now().Add(-24*time.Hour - time.Minute)
		stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, security.Claims{
			Email:     "ada@example.com",
			AccountID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(24 * time.Hour)),
			},
		}).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		_, err = fx.auth.VerifyToken(stale)
		assertKind(t, err, KindUnauthorized)
	})

	t.Run("valid", func(t *testing.T) {
		token, _, err := fx.jwt.SignSession(7, "ada@example.com")
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		claims, err := fx.auth.VerifyToken(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.AccountID != 7 || claims.Email != "ada@example.com" {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})
}

func TestAuthServiceSignupLoginCurrentAccountScenario(t *testing.T) {
	fx := newAuthFixture(t, AuthConfig{})
	ctx := context.Background()

	if _, err := fx.auth.InitiateSignup(ctx, "grace@example.com"); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	created, err := fx.auth.CompleteSignup(ctx, SignupInput{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
		Password: "cobol", ConfirmPassword: "cobol", Code: fx.lastCode(t),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	res, err := fx.auth.Login(ctx, "grace@example.com", "cobol")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := fx.auth.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	me, err := fx.auth.CurrentAccount(ctx, claims.AccountID)
	if err != nil {
		t.Fatalf("current account: %v", err)
	}
	if me.ID != created.ID || me.Email != "grace@example.com" || me.FirstName != "Grace" || me.LastName != "Hopper" {
		t.Fatalf("unexpected account %+v", me)
	}
}

func TestAuthServiceCurrentAccountNotFound(t *testing.T) {
	fx := newAuthFixture(t, AuthConfig{})
	_, err := fx.auth.CurrentAccount(context.Background(), 404)
	assertKind(t, err, KindNotFound)
}
