package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrUnknownFormat   = errors.New("unrecognized output format")
	ErrInvalidResx     = errors.New("invalid resx file")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrReadOnlyTarget  = errors.New("target file is read-only")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeDiscovery  ErrorType = "discovery"
	ErrorTypeParsing    ErrorType = "parsing"
	ErrorTypeConversion ErrorType = "conversion"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewConfigError creates a new error related to configuration handling
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewDiscoveryError creates a new error related to bundle discovery
func NewDiscoveryError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDiscovery,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to resx parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewConversionError creates a new error related to JSON generation
func NewConversionError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConversion,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output writing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeDiscovery:
			return fmt.Sprintf("Discovery error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("Resx parsing error: %s", appErr.Message)
		case ErrorTypeConversion:
			return fmt.Sprintf("Conversion error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrUnknownFormat) {
		return "Error: Unrecognized output format. Supported formats: default, requirejs, i18next, devextreme."
	}
	if errors.Is(err, ErrInvalidResx) {
		return "Error: The input is not a valid resx file. Please check the file content."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrReadOnlyTarget) {
		return "Error: The target file is read-only and the overwrite policy is set to skip."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
