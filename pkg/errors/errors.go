// Package errors provides custom error types for stratcheck.
// Loading failures, configuration problems and the "inconsistencies found"
// outcome are all typed so callers can branch on them with errors.Is and
// errors.As instead of matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are re-exported so callers need a single errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Sentinel errors for the stratcheck system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingInput indicates that a required input document does not exist
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedInput indicates that an input document exists but has the wrong shape
	ErrMalformedInput = errors.New("malformed input")

	// ErrInconsistent indicates that the check ran and found inconsistencies
	ErrInconsistent = errors.New("inconsistencies found")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "csv"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// MissingInputError reports that a required input document does not exist.
type MissingInputError struct {
	Input string // "reference table", "records"
	Path  string
	Err   error
}

// Error implements the error interface
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s not found at %s", e.Input, e.Path)
}

// Unwrap implements errors.Unwrap
func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError
func NewMissingInputError(input, path string, err error) *MissingInputError {
	return &MissingInputError{Input: input, Path: path, Err: err}
}

// MalformedInputError reports that an input document exists but cannot be
// parsed into the expected shape.
type MalformedInputError struct {
	Input   string
	Path    string
	Message string
	Err     error
}

// Error implements the error interface. The wrapped cause, when present,
// is appended so line and column details reach the user.
func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("malformed %s: %s", e.Input, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("malformed %s %s: %s", e.Input, e.Path, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewMalformedInputError creates a new MalformedInputError
func NewMalformedInputError(input, path, message string, err error) *MalformedInputError {
	return &MalformedInputError{
		Input:   input,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// InconsistencyError carries the "inconsistencies found" outcome out of a
// command. It is a normal result, not a failure to run.
type InconsistencyError struct {
	Count int
}

// Error implements the error interface
func (e *InconsistencyError) Error() string {
	if e.Count == 1 {
		return "found 1 inconsistency"
	}
	return fmt.Sprintf("found %d inconsistencies", e.Count)
}

// Is implements errors.Is support
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

// NewInconsistencyError creates a new InconsistencyError
func NewInconsistencyError(count int) *InconsistencyError {
	return &InconsistencyError{Count: count}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingInput checks if an error reports an absent input document
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsMalformedInput checks if an error reports an unparseable input document
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsInconsistent checks if an error carries the inconsistencies-found outcome
func IsInconsistent(err error) bool {
	return errors.Is(err, ErrInconsistent)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
