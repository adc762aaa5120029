package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the base error for every domain in the catalog
type Error struct {
	Kind    Kind   // Drives the HTTP status code
	Code    string // Stable machine-readable code (e.g. "AUTHOR_NOT_FOUND")
	Message string // Human-readable message, safe to return to clients
	Err     error  // Underlying cause, never sent to clients
}

// Error implements error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values by code so that a sentinel still matches
// after it was re-created with a more specific message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Internal wraps a store or runtime failure. The message is generic on purpose:
// the cause is only available through Unwrap for server-side logging.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: MessageInternal, Err: err}
}

// WithMessage returns a copy of e carrying a more specific message
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// Wrap returns a copy of e carrying err as its cause
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

const (
	CodeInternal    = "INTERNAL_ERROR"
	MessageInternal = "Internal server error"
)

// ErrInvalidJSON is returned for request bodies that do not decode
var ErrInvalidJSON = Validation("INVALID_JSON", "request body must be a valid JSON object")

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// As extracts the *Error from the chain, if any
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Describe returns the status code, stable code and client-facing message for err.
// Internal errors never leak their cause.
func Describe(err error) (status int, code string, message string) {
	appErr, ok := As(err)
	if !ok || appErr.Kind == KindInternal {
		return http.StatusInternalServerError, CodeInternal, MessageInternal
	}
	return HTTPStatus(appErr.Kind), appErr.Code, appErr.Message
}

// Ensure leaves catalog errors untouched and wraps everything else as internal
func Ensure(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Internal(err)
}
