/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no chunk of the requested type is registered
	ErrNotFound = errors.New("chunk not found")

	// ErrDuplicateKey is returned when a chunk of the same data type is already registered
	ErrDuplicateKey = errors.New("chunk already registered")

	// ErrUnsupportedOperation is returned when an operation mode has no provider configured for it
	ErrUnsupportedOperation = errors.New("operation not supported by configured providers")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents a lookup for a chunk type that was never registered
type NotFoundError struct {
	Type string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no chunk registered for type %s", e.Type)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateKeyError represents an attempt to register a second chunk under a
// data type that already has one
type DuplicateKeyError struct {
	Type string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("chunk already registered for type %s", e.Type)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// UnsupportedOperationError represents a save/load/exists/delete call made in a
// mode (synchronous or context-based) for which no suitable provider is configured
type UnsupportedOperationError struct {
	Operation string
	Missing   string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported: no %s configured", e.Operation, e.Missing)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(typeName string) error {
	return &NotFoundError{Type: typeName}
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(typeName string) error {
	return &DuplicateKeyError{Type: typeName}
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(operation, missing string) error {
	return &UnsupportedOperationError{Operation: operation, Missing: missing}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsUnsupportedOperation checks if an error is an unsupported operation error
func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
