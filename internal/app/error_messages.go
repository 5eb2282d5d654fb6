// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains wire messages shared by the eco-ideas server handlers
// and the client adapter.
//
// The server writes them as {"error": Msg...} bodies; the client adapter
// matches them to pick the right sentinel error when a status code alone is
// ambiguous.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or required fields are missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the e-mail/password pair does
	// not match an account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when a dependency failed transiently.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer or refresh token
	// is expired, revoked or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when a non-administrator calls an admin
	// route.
	MsgAccessDenied = "access denied"

	// MsgEmailAlreadyExists is returned by sign-up for a taken e-mail.
	MsgEmailAlreadyExists = "email already exists"

	MsgProfileNotFound      = "profile not found"
	MsgProfileAlreadyExists = "profile already exists"
	MsgIdeaNotFound         = "idea not found"

	// MsgStatusTransition is returned when an idea may not move to the
	// requested status.
	MsgStatusTransition = "status transition not allowed"

	MsgCategoryNotFound = "category not found"
	MsgGoalNotFound     = "goal not found"

	// MsgTitleRequired, MsgDescriptionRequired and MsgCategoryRequired name
	// the missing field of an idea.
	MsgTitleRequired       = "title is required"
	MsgDescriptionRequired = "description is required"
	MsgCategoryRequired    = "category is required"

	// MsgUploadFailed is returned when an attachment could not be stored.
	MsgUploadFailed = "upload failed"

	// MsgFileTooLarge is returned for attachments above the upload limit.
	MsgFileTooLarge = "file too large"

	// MsgTooManyRequests is returned by the rate limiters.
	MsgTooManyRequests = "too many requests"

	// Assistant messages are shown to the user verbatim.
	MsgChatEmptyMessage    = "Mensagem é obrigatória"
	MsgChatNotConfigured   = "API key não configurada"
	MsgChatUpstreamFailure = "Erro na consulta à IA"
)
