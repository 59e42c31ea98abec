// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for presentation and control flow.
type Kind int

const (
	// KindUnknown covers 5xx and anything not otherwise classified.
	KindUnknown Kind = iota
	// KindTransport means the backend was never reached or did not answer.
	KindTransport
	// KindAuthentication covers rejected credentials and expired sessions.
	KindAuthentication
	// KindValidation covers malformed input, missing resources and conflicts.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Sentinels matched by [Error.Is]; compare with errors.Is(err, ErrXxx).
var (
	ErrTransport      = errors.New("transport error")
	ErrAuthentication = errors.New("authentication error")
	ErrValidation     = errors.New("validation error")
	ErrUnknown        = errors.New("unknown error")
)

// Generic messages used when the backend supplies none.
const (
	MsgTransport = "Network error: unable to reach the server"
	MsgGeneric   = "An error occurred"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	// Field is the offending input name (e.g. "email").
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error is the normalised failure returned by every [API] call and by the
// services built on top of it.
type Error struct {
	Kind Kind
	// Status is the HTTP status code, 0 for transport and client-side errors.
	Status int
	// Message is safe to show to the user.
	Message string
	// Fields holds per-field details for validation failures.
	Fields []FieldError
	// Cause is the underlying error, for logging only.
	Cause error
}

// Error implements the error interface. It returns the user-facing message.
func (e *Error) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrUnknown:
		return e.Kind == KindUnknown
	}
	return false
}

// FieldMessage returns the message attached to field, if any.
func (e *Error) FieldMessage(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

// WithKind returns a copy of e re-classified as kind. Services use it to
// apply operation-specific rules, e.g. any rejected login is an
// authentication failure.
func (e *Error) WithKind(kind Kind) *Error {
	c := *e
	c.Kind = kind
	return &c
}

// NewValidationError builds a client-side validation failure.
func NewValidationError(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NewAuthenticationError builds a client-side authentication failure, e.g.
// when an operation requires a credential that is not held.
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Status: 0, Message: message}
}

// NewUnknownError wraps cause as an unclassified failure.
func NewUnknownError(message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Message: message, Cause: cause}
}

// As extracts the [*Error] from err's chain. It returns nil if not found.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// KindOf returns the kind of err, or [KindUnknown] for foreign errors.
func KindOf(err error) Kind {
	if ae := As(err); ae != nil {
		return ae.Kind
	}
	return KindUnknown
}

// Message returns the user-facing message for any error. Foreign errors
// yield [MsgGeneric] so that internal details never reach the screen.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ae := As(err); ae != nil && ae.Message != "" {
		return ae.Message
	}
	return MsgGeneric
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuthentication
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindUnknown
	}
}
