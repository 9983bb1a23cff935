package authz

import (
	"errors"
	"fmt"
	"net/http"
)

// Authorization error codes.
const (
	ErrCodeUnauthenticated = "authz.unauthenticated" // missing or unknown identity inputs
	ErrCodeForbidden       = "authz.forbidden"       // identity resolved but lacks permission
	ErrCodeConfig          = "authz.config_error"    // caller or configuration defect
)

// httpStatusMap maps error codes to HTTP status codes.
var httpStatusMap = map[string]int{
	ErrCodeUnauthenticated: http.StatusUnauthorized,        // 401
	ErrCodeForbidden:       http.StatusForbidden,           // 403
	ErrCodeConfig:          http.StatusInternalServerError, // 500
}

// Error is an authorization rejection with a structured code.
// Middleware uses the code (not the message) to pick the response status.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus returns the response status for this rejection.
func (e *Error) HTTPStatus() int {
	return e.Status
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: httpStatusMap[code]}
}

// ErrUnauthenticated builds a 401-class rejection.
func ErrUnauthenticated(message string) *Error {
	return newError(ErrCodeUnauthenticated, message)
}

// ErrForbidden builds a 403-class rejection.
func ErrForbidden(message string) *Error {
	return newError(ErrCodeForbidden, message)
}

// ErrConfigError builds a 500-class error for defects in calling code or
// configuration, such as a malformed action string.
func ErrConfigError(message string) *Error {
	return newError(ErrCodeConfig, message)
}

// ErrorCode extracts the authz error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUnauthenticated reports whether err is a 401-class rejection.
func IsUnauthenticated(err error) bool { return ErrorCode(err) == ErrCodeUnauthenticated }

// IsForbidden reports whether err is a 403-class rejection.
func IsForbidden(err error) bool { return ErrorCode(err) == ErrCodeForbidden }
