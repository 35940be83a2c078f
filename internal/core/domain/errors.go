package domain

import "fmt"

// ErrorCode represents categorized error types.
// These codes are stable and can be used for programmatic error handling.
type ErrorCode string

const (
	// ErrCodeInvalidCredentials covers a wrong email/password pair.
	// User-correctable; surfaced for display, never retried.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"

	// ErrCodeAccountExists covers a signup for an already-registered email.
	ErrCodeAccountExists ErrorCode = "account_exists"

	// ErrCodeWeakCredential covers a password rejected by provider policy.
	ErrCodeWeakCredential ErrorCode = "weak_credential"

	// ErrCodeStoreRead covers a document store read that failed.
	// Distinct from a record that is legitimately absent.
	ErrCodeStoreRead ErrorCode = "store_read_failed"

	// ErrCodeStoreWrite covers a document store write that failed.
	ErrCodeStoreWrite ErrorCode = "store_write_failed"
)

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// UserCorrectable reports whether the error is fixable by the end user
// (as opposed to an infrastructure failure).
func (c ErrorCode) UserCorrectable() bool {
	switch c {
	case ErrCodeInvalidCredentials, ErrCodeAccountExists, ErrCodeWeakCredential:
		return true
	}
	return false
}

// AppError is a structured error with code, message, and optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the ErrorCode from an error, or "" if no AppError is
// anywhere in its chain.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if app, ok := err.(*AppError); ok {
			return app.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// InvalidCredentialsError creates an invalid-credentials error.
func InvalidCredentialsError() *AppError {
	return &AppError{Code: ErrCodeInvalidCredentials, Message: "invalid email or password"}
}

// AccountExistsError creates an account-exists error.
func AccountExistsError(email string) *AppError {
	return &AppError{
		Code:    ErrCodeAccountExists,
		Message: fmt.Sprintf("an account already exists for %q", email),
	}
}

// WeakCredentialError creates a weak-credential error.
func WeakCredentialError(reason string) *AppError {
	return &AppError{Code: ErrCodeWeakCredential, Message: reason}
}

// StoreReadError wraps a failed document store read.
func StoreReadError(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeStoreRead,
		Message: "role store read failed",
		Cause:   cause,
	}
}

// StoreWriteError wraps a failed document store write.
func StoreWriteError(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeStoreWrite,
		Message: "role store write failed",
		Cause:   cause,
	}
}
