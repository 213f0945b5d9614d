package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - errors related to user input and lookup results
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeConflict

	// Upstream errors - errors related to the geocoding and forecast services
	ErrorTypeHTTP
	ErrorTypeTransport
	ErrorTypeExternalAPI

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeConflict:
		return "CONFLICT_ERROR"
	case ErrorTypeHTTP:
		return "HTTP_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across handlers and tests
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	ConflictError      = ErrorTypeConflict
	HTTPError          = ErrorTypeHTTP
	TransportError     = ErrorTypeTransport
	ExternalAPIError   = ErrorTypeExternalAPI
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	// StatusCode is the upstream HTTP status for HTTPError, zero otherwise.
	StatusCode int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewConflictError(message string) *AppError {
	return New(ConflictError, message)
}

// Upstream Error Constructors

// NewHTTPError reports a non-success status from an upstream service.
func NewHTTPError(statusCode int) *AppError {
	return &AppError{
		Type:       HTTPError,
		Message:    fmt.Sprintf("HTTP error! Status: %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewTransportError keeps the transport failure's own text as the message.
func NewTransportError(cause error) *AppError {
	message := "request failed"
	if cause != nil {
		message = cause.Error()
	}
	return Wrap(TransportError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// UserMessage returns the text shown to a user for err: the AppError message
// when there is one, the plain error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Helper functions for error type checking
func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsConflictError(err error) bool {
	return isType(err, ConflictError)
}

func IsHTTPError(err error) bool {
	return isType(err, HTTPError)
}

func IsTransportError(err error) bool {
	return isType(err, TransportError)
}

func IsExternalAPIError(err error) bool {
	return isType(err, ExternalAPIError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

// IsUpstreamError reports whether err came from one of the upstream services.
func IsUpstreamError(err error) bool {
	return IsHTTPError(err) || IsTransportError(err) || IsExternalAPIError(err)
}
