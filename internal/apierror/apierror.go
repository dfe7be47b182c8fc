// Package apierror provides standardized error response structures for the API
// plus the typed domain errors the services return. All errors sent to clients
// go through this package so internal details (stack traces, driver errors)
// never leak.
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors wraps multiple field-level validation failures.
type FieldErrors struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Detail: "validation failed", Fields: fields}
}

// ── Domain error taxonomy ────────────────────────────────────────────────────
// Services return these; handler.respondError maps them to HTTP status codes.

// ValidationError: missing or malformed input, rejected before any mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError: unknown business key (inbound number, SKU, order number…).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError: uniqueness violation, e.g. a duplicate inbound number.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// UnauthorizedError: bad credentials or a missing/invalid/revoked token.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string { return e.Msg }

func Unauthorized(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError: an outbound shipment asked for more than is on hand.
// Available carries the current stock so the UI can tell the operator.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

func InsufficientStock(available int) *InsufficientStockError {
	return &InsufficientStockError{Available: available}
}

// StorageError: an underlying database failure. The wrapped cause is logged
// server-side; clients only ever see a generic message.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

func Storage(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
