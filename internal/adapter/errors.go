// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures that happened before any answer was
	// received: DNS, refused connections, timeouts.
	ErrTransport = errors.New("server unreachable")

	ErrDecodeResponse = errors.New("failed to decode response")
)

// StatusError is a non-2xx answer. It unwraps to the sentinel matching
// Status and carries the server's error message.
type StatusError struct {
	Status  int
	Message string

	kind error
}

// NewStatusError builds the error for an answer with the given status.
func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message, kind: statusKind(status)}
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// Message returns the server's error message carried by err, or "" when err
// is not a [*StatusError].
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
