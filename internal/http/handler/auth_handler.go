package handler

import (
	"net/http"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

type AuthHandler struct {
	authSvc   service.AuthServiceInterface
	cookieMgr *security.CookieManager
}

func NewAuthHandler(authSvc service.AuthServiceInterface, cookieMgr *security.CookieManager) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cookieMgr: cookieMgr}
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"max=255"`
}

type signupRequest struct {
	FirstName       string `json:"firstName" validate:"max=120"`
	LastName        string `json:"lastName" validate:"max=120"`
	Email           string `json:"email" validate:"max=255"`
	Password        string `json:"password" validate:"max=512"`
	ConfirmPassword string `json:"confirmPassword" validate:"max=512"`
	OTP             string `json:"otp" validate:"max=16"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=512"`
}

func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "send_code", status, time.Since(start))
	}()

	var req sendCodeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		status = "bad_request"
		writeDecodeError(w, r, err, "Invalid email")
		return
	}
	challenge, err := h.authSvc.InitiateSignup(r.Context(), req.Email)
	if err != nil {
		status = statusLabel(err)
		observability.Audit(r, "auth.signup.code.failed", "reason", status)
		writeServiceError(w, r, err, "Could not send OTP")
		return
	}
	observability.Audit(r, "auth.signup.code.sent", "expires_at", challenge.ExpiresAt)
	payload := map[string]any{"expires_at": challenge.ExpiresAt}
	if challenge.Code != "" {
		payload["otp"] = challenge.Code
	}
	response.JSON(w, r, http.StatusOK, "OTP sent successfully", payload)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "signup", status, time.Since(start))
	}()

	var req signupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		status = "bad_request"
		writeDecodeError(w, r, err, "Invalid signup fields")
		return
	}
	account, err := h.authSvc.CompleteSignup(r.Context(), service.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Code:            req.OTP,
	})
	if err != nil {
		status = statusLabel(err)
		observability.Audit(r, "auth.signup.failed", "reason", status)
		writeServiceError(w, r, err, "User cannot be registered. Please try again.")
		return
	}
	observability.Audit(r, "auth.signup.success", "user_id", account.ID)
	response.JSON(w, r, http.StatusOK, "User created successfully", map[string]any{"user": account})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "login", status, time.Since(start))
	}()

	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		status = "bad_request"
		writeDecodeError(w, r, err, "Invalid login fields")
		return
	}
	result, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status = statusLabel(err)
		observability.Audit(r, "auth.login.failed", "reason", status)
		writeServiceError(w, r, err, "Login failure, please try again")
		return
	}
	h.cookieMgr.SetSessionCookie(w, result.Token)
	observability.Audit(r, "auth.login.success", "user_id", result.Account.ID)
	response.JSON(w, r, http.StatusOK, "User Login Success", map[string]any{
		"token":      result.Token,
		"user":       result.Account,
		"expires_at": result.ExpiresAt,
	})
}

// Me re-reads the account so a deleted account stops resolving even while its
// token is still within its lifetime.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromRequest(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
		return
	}
	account, err := h.authSvc.CurrentAccount(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, r, err, "Could not load user")
		return
	}
	response.JSON(w, r, http.StatusOK, "", map[string]any{"user": account})
}

// Logout only clears the cookie. Tokens are stateless and stay valid until
// they expire.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookieMgr.ClearSessionCookie(w)
	observability.Audit(r, "auth.logout")
	response.JSON(w, r, http.StatusOK, "Logged out", nil)
}
