// Package ecode defines business error codes shared by the HTTP layer.
//
// Codes follow a simple convention:
//   - 0: success
//   - -100..-199: authentication errors
//   - -400..-499: request / resource errors
//   - -500..: server errors
package ecode

import (
	"fmt"
	"net/http"
	"sync"
)

const (
	OK = 0

	NoLogin      = -101
	UserDisabled = -102

	RequestErr = -400
	ParamErr   = -401
	NotFound   = -404
	Conflict   = -409

	ServerErr          = -500
	ServiceUnavailable = -503
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:                 "ok",
		NoLogin:            "account not logged in",
		UserDisabled:       "account suspended",
		RequestErr:         "invalid request",
		ParamErr:           "invalid parameters",
		NotFound:           "resource not found",
		Conflict:           "resource conflict",
		ServerErr:          "internal server error",
		ServiceUnavailable: "service unavailable",
	}
)

// Register adds or overrides the message for a custom code.
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin, UserDisabled:
		return http.StatusUnauthorized
	case RequestErr, ParamErr:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message helpers used when composing entity-specific errors.

// AlreadyExist returns an "already exists" message for the named subject.
func AlreadyExist(k ...string) string {
	return withSubject(k, "already exists")
}

// NotExist returns a "does not exist" message for the named subject.
func NotExist(k ...string) string {
	return withSubject(k, "does not exist")
}

// FieldIsRequired returns a "required" message for the named field.
func FieldIsRequired(k ...string) string {
	return withSubject(k, "required")
}

// FieldIsInvalid returns an "invalid" message for the named field.
func FieldIsInvalid(k ...string) string {
	return withSubject(k, "invalid")
}

func withSubject(k []string, msg string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}
