package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) kind() error {
	switch e.Code {
	case CodeValidation:
		return ErrValidation
	case CodeExtraction:
		return ErrExtraction
	default:
		return nil
	}
}

// Is lets errors.Is match an AppError against its kind sentinel even when a
// Cause is attached.
func (e *AppError) Is(target error) bool {
	return target == e.kind()
}

// Error codes surfaced to callers. The processing core only ever emits these two.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeExtraction = "EXTRACTION_ERROR"
)

// Kind sentinels for errors.Is checks.
var (
	ErrValidation = errors.New("document validation failed")
	ErrExtraction = errors.New("extraction failed")
)

// NewValidationError reports a bad input document: missing path, wrong type, empty file.
func NewValidationError(message string) error {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewValidationErrorf(format string, args ...interface{}) error {
	return NewValidationError(fmt.Sprintf(format, args...))
}

// NewExtractionError reports an acquisition or internal processing fault.
func NewExtractionError(message string, cause error) error {
	return &AppError{Code: CodeExtraction, Message: message, Cause: cause}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsExtractionError reports whether err is (or wraps) an ExtractionError.
func IsExtractionError(err error) bool {
	return errors.Is(err, ErrExtraction)
}
