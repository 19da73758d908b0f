package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/middleware"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var errInvalidPayload = errors.New("invalid payload")

// decodeAndValidate returns errInvalidPayload for bodies that are not JSON and
// validator.ValidationErrors when struct tags fail.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	return validate.Struct(dst)
}

// writeDecodeError reports a bad body. Failed struct tags reuse the
// endpoint's fixed validation message and list the offending fields.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error, validationMsg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", validationMsg, fields)
		return
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return
	}
	response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
}

// writeServiceError maps service error kinds to HTTP. Anything untyped is an
// internal failure and only fallback is shown to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	msg := service.MessageOf(err)
	switch service.KindOf(err) {
	case service.KindValidation:
		response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
	case service.KindInvalidCode:
		response.Error(w, r, http.StatusBadRequest, "INVALID_CODE", msg, nil)
	case service.KindConflict:
		response.Error(w, r, http.StatusConflict, "CONFLICT", msg, nil)
	case service.KindNotFound:
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", msg, nil)
	case service.KindUnauthorized:
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", msg, nil)
	case service.KindDependency:
		slog.WarnContext(r.Context(), "dependency failure", "path", r.URL.Path, "error", err)
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNAVAILABLE", msg, nil)
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", fallback, nil)
	}
}

func statusLabel(err error) string {
	if kind := service.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

func accountIDFromRequest(r *http.Request) (uint, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.AccountID == 0 {
		return 0, false
	}
	return claims.AccountID, true
}

func parsePathID(input string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", input)
	}
	return uint(n), nil
}

func parsePageRequest(r *http.Request) (repository.PageRequest, error) {
	page := repository.DefaultPage
	pageSize := repository.DefaultPageSize
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("page must be a positive integer")
		}
		page = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("page_size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("page_size must be a positive integer")
		}
		if v > repository.MaxPageSize {
			return repository.PageRequest{}, fmt.Errorf("page_size must be <= %d", repository.MaxPageSize)
		}
		pageSize = v
	}
	return repository.PageRequest{Page: page, PageSize: pageSize}, nil
}

func paginationMeta[T any](res repository.PageResult[T]) map[string]any {
	return map[string]any{
		"page":        res.Page,
		"page_size":   res.PageSize,
		"total":       res.Total,
		"total_pages": res.TotalPages,
	}
}
