// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Match them with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when an account with the same e-mail
	// is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the e-mail.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrProfileNotFound is returned when a user has no profile row.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileAlreadyExists is returned by a profile backfill that lost the
	// race against another one.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrIdeaNotFound is returned when no idea has the given id.
	ErrIdeaNotFound = errors.New("idea was not found")

	// ErrStatusTransition is returned when an idea's status may not move to
	// the requested one (e.g. approved to rejected).
	ErrStatusTransition = errors.New("idea status transition is not allowed")

	// ErrGoalNotFound is returned when updating a goal key that does not
	// exist, i.e. its category is not tracked.
	ErrGoalNotFound = errors.New("goal was not found")

	// ErrCategoryNotFound is returned when no category has the given name.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrSessionNotFound is returned when a refresh token is unknown or
	// expired.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrLocalStateNotFound is returned by the client state store when a key
	// was never written.
	ErrLocalStateNotFound = errors.New("local state not found")

	// ErrMalformedRecord is returned when a row holds a value outside the
	// known enumerations.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrRetryable wraps transient database failures.
	ErrRetryable = errors.New("transient storage failure")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrUploadingObject is returned when an attachment cannot be written to
	// the object backend.
	ErrUploadingObject = errors.New("failed to upload object")
)
