// Package errors provides custom error types for the atlasmap system.
// These errors enable programmatic error checking and a clear split between
// absorbable failures (logged, skipped) and the single fatal class (I/O).
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the atlasmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoNames indicates that a territory name list was empty or absent
	ErrNoNames = errors.New("no territory names provided")

	// ErrSourceUnavailable indicates that a geometry source could not be read
	ErrSourceUnavailable = errors.New("source unavailable")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
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
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SourceError represents a failure to obtain features from a geometry source.
// It is never fatal; the aggregator logs it and the source contributes zero.
type SourceError struct {
	Source  string
	Layer   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("source %s (layer %s): %s", e.Source, e.Layer, e.Message)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError
func NewSourceError(source, layer, message string, err error) *SourceError {
	return &SourceError{Source: source, Layer: layer, Message: message, Err: err}
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
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "geojson", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
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
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations.
// This is the only fatal error class in the pipeline.
type IOError struct {
	Operation string // "read", "write", "create", "rename"
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
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
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

// IsSourceUnavailable checks if an error indicates an unreadable source
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsIO checks if an error is an I/O error
func IsIO(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

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

// WrapSource wraps an error as a SourceError
func WrapSource(source, layer string, err error) error {
	if err == nil {
		return nil
	}
	return NewSourceError(source, layer, err.Error(), err)
}
