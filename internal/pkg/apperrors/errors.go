package apperrors

import "errors"

// Common errors
var (
	// Catalog errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrCourseNotFound   = errors.New("course not found")

	// ErrRelatedEntityNotFound is the distinct kind for an upload that
	// references a course/subject/session id that does not exist. The
	// outward message stays generic; callers match on this sentinel.
	ErrRelatedEntityNotFound = errors.New("related entity not found")

	// Upload validation errors
	ErrMissingAttachment   = errors.New("missing attachment")
	ErrConflictingAttach   = errors.New("both file and url provided")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrValidationFailed    = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// User errors
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")

	// Reference data errors
	ErrCourseAlreadyExists  = errors.New("course with this name already exists")
	ErrSessionAlreadyExists = errors.New("session with this name already exists")
)

// NewValidationError creates a validation error carrying the message shown
// to the submitter as error_message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewRelatedEntityNotFoundError wraps the distinct not-found kind with the
// entity that failed to resolve. The message is for logs, not for callers.
func NewRelatedEntityNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrRelatedEntityNotFound,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
