package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCoder is implemented by every error that knows its HTTP status.
// default error is internal service error at handler level
type StatusCoder interface {
	error
	StatusCode() int
}

// ErrorWithStatusCode is used at the boundary for failures that are not part
// of the content taxonomy (malformed json, missing token and so on).
type ErrorWithStatusCode struct {
	Message string
	Code    int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) StatusCode() int {
	return e.Code
}

// NotFoundError means a referenced thread, comment, reply or like does not exist.
type NotFoundError struct {
	Message string
}

func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// AuthorizationError means the caller does not own the content it tries to mutate.
type AuthorizationError struct {
	Message string
}

func Forbidden(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func (e *AuthorizationError) StatusCode() int {
	return http.StatusForbidden
}

type ValidationKind string

const (
	MissingProperty ValidationKind = "missing required property"
	WrongDataType   ValidationKind = "wrong data type"
	InvalidValue    ValidationKind = "invalid value"
)

// ValidationError is raised when an entity rejects its input at construction.
type ValidationError struct {
	Entity string
	Kind   ValidationKind
	Field  string
	Detail string
}

func Validation(entity string, kind ValidationKind, field string) *ValidationError {
	return &ValidationError{Entity: entity, Kind: kind, Field: field}
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Entity, e.Kind)
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// Is reports whether err (or anything it wraps) is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode returns the http status carried by err, or 500 if there is none.
func StatusCode(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
