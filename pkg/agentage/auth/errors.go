package auth

import (
	"errors"
	"fmt"
)

// Machine-readable error codes of the authentication protocol.
// authorization_pending and slow_down only occur inside the poll loop and
// never surface as terminal errors.
const (
	CodeRequestFailed        = "request_failed"
	CodeAuthorizationPending = "authorization_pending"
	CodeSlowDown             = "slow_down"
	CodeExpiredToken         = "expired_token"
	CodeAccessDenied         = "access_denied"
	CodeNotAuthenticated     = "not_authenticated"
	CodeSessionExpired       = "session_expired"
	CodeUnknown              = "unknown_error"
)

// Error is an authentication protocol error carrying a machine-readable
// code alongside the human message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the protocol code of err, or "" when err is not an
// authentication error.
func CodeOf(err error) string {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}
