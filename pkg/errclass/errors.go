// Package errclass defines the stable error classes reported by safebackup.
package errclass

import "fmt"

// SafeError is a stable, machine-readable error class.
type SafeError struct {
	Code    string
	Message string
	Cause   error
}

func (e *SafeError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SafeError) Is(target error) bool {
	t, ok := target.(*SafeError)
	return ok && e.Code == t.Code
}

// Unwrap returns the underlying OS error, if any.
func (e *SafeError) Unwrap() error {
	return e.Cause
}

// WithMessage returns a new SafeError with the same Code but a specific message.
func (e *SafeError) WithMessage(msg string) *SafeError {
	return &SafeError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new SafeError with a formatted message.
func (e *SafeError) WithMessagef(format string, args ...any) *SafeError {
	return &SafeError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new SafeError carrying cause. The message is what gets
// recorded in the audit trail, so it already includes the cause text.
func (e *SafeError) Wrap(cause error, msg string) *SafeError {
	return &SafeError{Code: e.Code, Message: msg, Cause: cause}
}

// Detail returns the human-readable part of the error without the code.
func (e *SafeError) Detail() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

var (
	ErrInvalidPath      = &SafeError{Code: "E_INVALID_PATH"}
	ErrNotFound         = &SafeError{Code: "E_NOT_FOUND"}
	ErrIO               = &SafeError{Code: "E_IO"}
	ErrUserCancelled    = &SafeError{Code: "E_USER_CANCELLED"}
	ErrAuditUnavailable = &SafeError{Code: "E_AUDIT_UNAVAILABLE"}
	ErrUsage            = &SafeError{Code: "E_USAGE"}
)
