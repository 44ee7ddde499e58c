package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrNoConfigDir indicates the platform config directory cannot be determined.
	ErrNoConfigDir = errors.New("cannot determine user config directory")

	// ErrTypeMismatch indicates a value's type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParseError represents an error while parsing the configuration file or
// one of its values. Path names the file or the field the error belongs to.
type ParseError struct {
	// Path is the file path or field path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := ""
	if e.Path != "" {
		where = fmt.Sprintf(" in %s", e.Path)
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error%s at line %d, column %d: %s", where, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error%s at line %d: %s", where, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error%s: %s", where, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeError is returned when a configuration value has the wrong type.
type TypeError struct {
	// Path is the field path.
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ValidationError describes a value that parsed but is not allowed.
type ValidationError struct {
	// Path is the field path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}
