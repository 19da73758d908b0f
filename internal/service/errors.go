package service

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidCode  ErrorKind = "invalid_code"
	KindUnauthorized ErrorKind = "unauthorized"
	KindDependency   ErrorKind = "dependency"
)

// Error carries a client-safe Message; Err holds the internal cause and is
// never rendered to callers.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind so callers can use errors.Is(err, ErrValidation).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrInvalidCode  = &Error{Kind: KindInvalidCode}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrDependency   = &Error{Kind: KindDependency}
)

func ValidationError(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

func ConflictError(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

func NotFoundError(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

func InvalidCodeError(msg string) error { return &Error{Kind: KindInvalidCode, Message: msg} }

func UnauthorizedError(msg string, cause error) error {
	return &Error{Kind: KindUnauthorized, Message: msg, Err: cause}
}

func DependencyError(msg string, cause error) error {
	return &Error{Kind: KindDependency, Message: msg, Err: cause}
}

// KindOf reports the kind of a service error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// MessageOf returns the client-safe message of a service error.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

const (
	msgEmailRequired      = "A valid email is required"
	msgAlreadyRegistered  = "User is already registered"
	msgAllFieldsRequired  = "All fields are required"
	msgPasswordMismatch   = "Password and Confirm Password do not match"
	msgAccountExists      = "User already exists, please login"
	msgInvalidCode        = "OTP is invalid"
	msgSignupFirst        = "Signup first before login."
	msgPasswordIncorrect  = "Password is incorrect"
	msgTokenMissing       = "Token is missing"
	msgTokenInvalid       = "Token is invalid"
	msgMailFailed         = "Failed to send verification email"
	msgAccountNotFound    = "User not found"
	msgNoteFieldsRequired = "Title and description are required"
	msgNoteNotFound       = "Note not found"
)
