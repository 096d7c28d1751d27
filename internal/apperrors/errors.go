// Package apperrors defines the error categories the catalog manager
// reports to its callers. Each category carries a fixed, caller-visible
// message; callers discriminate with errors.As.
package apperrors

// ValidationError reports a product that failed business validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation returns a ValidationError with the given message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ArgumentError reports a missing or blank required argument.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

// NewArgument returns an ArgumentError with the given message.
func NewArgument(message string) *ArgumentError {
	return &ArgumentError{Message: message}
}

// NotFoundError reports a query that yielded no results.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound returns a NotFoundError with the given message.
func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}
