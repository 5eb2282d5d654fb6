// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side service errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrTooManyIDs is returned by batch lookups above MaxLookupIDs.
	ErrTooManyIDs = errors.New("too many ids requested")

	// ErrAssistantNotConfigured is returned by the chat proxy when no API key
	// was provided.
	ErrAssistantNotConfigured = errors.New("assistant is not configured")

	// ErrAssistantFailed is returned when the upstream model call fails.
	ErrAssistantFailed = errors.New("assistant request failed")

	ErrEmptyChatMessage = errors.New("chat message is empty")
)

// Client-side errors. service.Reason turns them into the messages shown to
// the user.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")

	// ErrUploadFailed and ErrInsertFailed tell apart the two steps of idea
	// creation.
	ErrUploadFailed = errors.New("attachment upload failed")
	ErrInsertFailed = errors.New("idea insert failed")

	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
