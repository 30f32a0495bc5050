package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this serial number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// TransitionError represents a device transition refused by the workflow rules.
// It never has side effects and is never retried.
type TransitionError struct {
	Reason string
}

func (e *TransitionError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for TransitionError
func (e *TransitionError) Is(target error) bool {
	t, ok := target.(*TransitionError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// TransientError marks storage contention that is safe to retry as a whole unit of work
type TransientError struct {
	Kind string
}

func (e *TransientError) Error() string {
	return e.Kind
}

// Is enables errors.Is() comparison for TransientError
func (e *TransientError) Is(target error) bool {
	t, ok := target.(*TransientError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDeviceNotFound  = &NotFoundError{Entity: "device"}
	ErrRequestNotFound = &NotFoundError{Entity: "request"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrDeviceExists = &AlreadyExistsError{Entity: "device", Context: "with this serial number"}
	ErrUserExists   = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Transition rule errors
var (
	ErrDeviceNotAvailable      = &TransitionError{Reason: "device is not available"}
	ErrNotOwner                = &TransitionError{Reason: "device is not assigned to the requesting user"}
	ErrMustReleaseFirst        = &TransitionError{Reason: "assigned device must be released before it can be returned"}
	ErrDuplicatePendingRequest = &TransitionError{Reason: "device already has a pending request"}
)

// Input validation errors
var (
	ErrInvalidReportType  = &ValidationError{Field: "report_type", Message: "must be one of missing, stolen, dead"}
	ErrInvalidRequestType = &ValidationError{Field: "type", Message: "must be one of assign, release, report, return"}
	ErrInvalidDecision    = &ValidationError{Field: "decision", Message: "must be one of approved, rejected"}
	ErrInvalidStatus      = &ValidationError{Field: "status", Message: "unknown status"}
)

// Business Logic Errors
var (
	ErrAlreadyProcessed        = errors.New("request has already been processed")
	ErrDeviceStateCorrupt      = errors.New("device state is inconsistent")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Storage contention errors
var (
	ErrLockWaitTimeout         = &TransientError{Kind: "lock wait timeout"}
	ErrDeadlock                = &TransientError{Kind: "deadlock detected"}
	ErrLockContentionExhausted = errors.New("lock contention retries exhausted")
)

// Authentication / Authorization Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
	ErrUnauthorized = &AuthorizationError{Message: "actor is not allowed to perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsTransitionRejected checks if an error is a TransitionError
func IsTransitionRejected(err error) bool {
	var transitionErr *TransitionError
	return errors.As(err, &transitionErr)
}

// IsTransient checks if an error is retryable storage contention
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewContentionExhaustedError reports the last transient failure after the retry budget is spent.
// The transient cause is flattened so callers never mistake the result for a retryable error.
func NewContentionExhaustedError(operation string, attempts int, last error) error {
	return fmt.Errorf("%s: %w after %d attempts: %v", operation, ErrLockContentionExhausted, attempts, last)
}
