package rolekit

import (
	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// Re-export error types from the domain package so callers only need
// the root import.
type ErrorCode = domain.ErrorCode
type AppError = domain.AppError

// Re-export error code constants
const (
	ErrCodeInvalidCredentials = domain.ErrCodeInvalidCredentials
	ErrCodeAccountExists      = domain.ErrCodeAccountExists
	ErrCodeWeakCredential     = domain.ErrCodeWeakCredential
	ErrCodeStoreRead          = domain.ErrCodeStoreRead
	ErrCodeStoreWrite         = domain.ErrCodeStoreWrite
)

// Re-export error constructors and sentinels
var (
	InvalidCredentialsError = domain.InvalidCredentialsError
	AccountExistsError      = domain.AccountExistsError
	WeakCredentialError     = domain.WeakCredentialError
	StoreReadError          = domain.StoreReadError
	StoreWriteError         = domain.StoreWriteError
	CodeOf                  = domain.CodeOf

	ErrRecordNotFound = domain.ErrRecordNotFound
)
