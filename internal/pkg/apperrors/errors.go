package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrRoleMismatch       = errors.New("token does not carry the required role claim")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
)

// Warden errors
var (
	ErrWardenNotFound = errors.New("warden not found")
	ErrWardenExists   = errors.New("warden already exists")
)

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrRollNoExists     = errors.New("roll number already registered")
	ErrEmailExists      = errors.New("email already registered")
	ErrContactExists    = errors.New("contact number already registered")
	ErrNoHostelAssigned = errors.New("student not assigned to any hostel")
)

// Hostel errors
var (
	ErrHostelNotFound   = errors.New("hostel not found")
	ErrHostelExists     = errors.New("hostel already exists")
	ErrCapacityExceeded = errors.New("hostel capacity exceeded")
)

// Support department errors
var (
	ErrDepartmentNotFound = errors.New("support department not found")
	ErrDepartmentExists   = errors.New("support department already registered")
	ErrInvalidDepartment  = errors.New("invalid support department name")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Food request errors
var (
	ErrFoodRequestNotFound = errors.New("food request not found")
	ErrFoodRequestExists   = errors.New("food request with this id already exists")
)

// Lost and found errors
var (
	ErrItemNotFound = errors.New("lost and found item not found")
	ErrItemExists   = errors.New("lost and found item already reported")
)

// Status errors
var (
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed input validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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
