package errors

import (
	"fmt"
)

// SumcheckError is the base error type for all sumcheck errors
type SumcheckError struct {
	message string
	cause   error
}

// Error implements the error interface
func (e *SumcheckError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	if e.message != "" {
		return e.message
	}
	return "Sumcheck Error"
}

// Unwrap returns the underlying error
func (e *SumcheckError) Unwrap() error {
	return e.cause
}

// New creates a new SumcheckError
func New(message string) *SumcheckError {
	return &SumcheckError{message: message}
}

// Wrap wraps an error with a SumcheckError
func Wrap(err error, message string) *SumcheckError {
	return &SumcheckError{message: message, cause: err}
}

// AssertionMismatch indicates a verification case computed a sum that does
// not equal its expected value
type AssertionMismatch struct {
	Case     string
	Expected int64
	Actual   int64
	Location string
}

// Error implements the error interface
func (e *AssertionMismatch) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("Assertion failed in case %s (%s): expected %d, got %d", e.Case, e.Location, e.Expected, e.Actual)
	}
	return fmt.Sprintf("Assertion failed in case %s: expected %d, got %d", e.Case, e.Expected, e.Actual)
}

// NewAssertionMismatch creates a new AssertionMismatch error
func NewAssertionMismatch(caseName string, expected, actual int64, location string) *AssertionMismatch {
	return &AssertionMismatch{Case: caseName, Expected: expected, Actual: actual, Location: location}
}

// OverflowError indicates an addition overflowed int64 under the checked policy
type OverflowError struct {
	A int64
	B int64
}

// Error implements the error interface
func (e *OverflowError) Error() string {
	return fmt.Sprintf("Addition overflow: %d + %d does not fit in int64", e.A, e.B)
}

// NewOverflowError creates a new OverflowError
func NewOverflowError(a, b int64) *OverflowError {
	return &OverflowError{A: a, B: b}
}

// ParseError indicates an operand or policy string could not be parsed
type ParseError struct {
	Input string
	Cause error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse %q: %v", e.Input, e.Cause)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError
func NewParseError(input string, cause error) *ParseError {
	return &ParseError{Input: input, Cause: cause}
}

// CaseFileError indicates a case file could not be read or decoded
type CaseFileError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *CaseFileError) Error() string {
	return fmt.Sprintf("Failed to load case file %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error
func (e *CaseFileError) Unwrap() error {
	return e.Cause
}

// NewCaseFileError creates a new CaseFileError
func NewCaseFileError(path string, cause error) *CaseFileError {
	return &CaseFileError{Path: path, Cause: cause}
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("Configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("Configuration error: %s", e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}
