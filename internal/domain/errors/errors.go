package errors

import (
	"net/http"

	"txtchange/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// Listings
	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"Book not found",
		"",
	)

	ErrLookupNoResults = NewBaseError(
		http.StatusUnprocessableEntity,
		"LOOKUP_NO_RESULTS",
		"No results found",
		"",
	)

	ErrLookupFailed = NewBaseError(
		http.StatusBadGateway,
		"LOOKUP_FAILED",
		"Error fetching book details",
		"",
	)

	ErrNotBookOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_BOOK_OWNER",
		"Only the seller can perform this action",
		"",
	)

	ErrPartialWrite = NewBaseError(
		http.StatusInternalServerError,
		"PARTIAL_WRITE",
		"The change was only partially saved",
		"",
	)

	// Interests and confirmation
	ErrInterestNotFound = NewBaseError(
		http.StatusNotFound,
		"INTEREST_NOT_FOUND",
		"Interest not found",
		"",
	)

	ErrOwnerCannotExpressInterest = NewBaseError(
		http.StatusForbidden,
		"OWNER_CANNOT_EXPRESS_INTEREST",
		"You cannot express interest in your own listing",
		"",
	)

	ErrOwnerCannotConfirmAsBuyer = NewBaseError(
		http.StatusForbidden,
		"OWNER_CANNOT_CONFIRM_AS_BUYER",
		"The seller cannot confirm on behalf of the buyer",
		"",
	)

	ErrBuyerCannotConfirmAsSeller = NewBaseError(
		http.StatusForbidden,
		"BUYER_CANNOT_CONFIRM_AS_SELLER",
		"Only the seller can confirm the sale",
		"",
	)

	ErrNotInterestParty = NewBaseError(
		http.StatusForbidden,
		"NOT_INTEREST_PARTY",
		"Only the interested buyer or the seller can change this interest",
		"",
	)

	// Users and accounts
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserNotReady = NewBaseError(
		http.StatusServiceUnavailable,
		"USER_NOT_READY",
		"Your account data is not available yet, please try again",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email address first",
		"",
	)

	ErrVerificationPending = NewBaseError(
		http.StatusConflict,
		"VERIFICATION_PENDING",
		"Email verification has not completed yet",
		"",
	)

	ErrEmailDomainNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_DOMAIN_NOT_ALLOWED",
		"Please sign up with your university email",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"UNSUPPORTED",
		"Operation not supported by the configured provider",
		"",
	)

	// Transactions
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"The change could not be saved",
		"",
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, please try again",
		"",
	)
)

// DatabaseExecuteError represents a store execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// Unwrap exposes the underlying store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Network or backend error, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
