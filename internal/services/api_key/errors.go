package api_key

import (
	"errors"
)

// Kind discriminates the errors returned by this package
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// ValidationError reports user input that violates a documented constraint.
// Its message is safe to show to the user verbatim.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceError reports a storage or infrastructure failure
type ServiceError struct {
	Message string
	Err     error
}

// NewServiceError creates a ServiceError wrapping cause
func NewServiceError(message string, cause error) *ServiceError {
	return &ServiceError{Message: message, Err: cause}
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// KindOf classifies err
func KindOf(err error) Kind {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return KindService
	}
	return KindUnknown
}
