package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure in a deck or config file,
// with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or deck validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvariantError reports a broken internal invariant, such as an active
// index outside the loaded sequence. It indicates a programming error in
// the surrounding shell, not a user-input condition, and callers are
// expected to fail loudly rather than recover.
type InvariantError struct {
	Component string
	Message   string
}

// NewInvariantError constructs an InvariantError.
func NewInvariantError(component, format string, args ...any) error {
	return &InvariantError{Component: component, Message: fmt.Sprintf(format, args...)}
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("invariant violation: %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("invariant violation: %s", e.Message)
}
