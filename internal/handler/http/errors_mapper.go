// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable is matched in order; the more specific errors come first.
var errorTable = []errorMapping{
	{validators.ErrEmptyTitle, http.StatusBadRequest, app.MsgTitleRequired},
	{validators.ErrEmptyDescription, http.StatusBadRequest, app.MsgDescriptionRequired},
	{validators.ErrInvalidCategory, http.StatusBadRequest, app.MsgCategoryRequired},
	{service.ErrEmptyChatMessage, http.StatusBadRequest, app.MsgChatEmptyMessage},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTooManyIDs, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrProfileAlreadyExists, http.StatusConflict, app.MsgProfileAlreadyExists},
	{store.ErrStatusTransition, http.StatusConflict, app.MsgStatusTransition},

	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
	{store.ErrIdeaNotFound, http.StatusNotFound, app.MsgIdeaNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound, app.MsgCategoryNotFound},
	{store.ErrGoalNotFound, http.StatusNotFound, app.MsgGoalNotFound},

	{service.ErrAssistantNotConfigured, http.StatusServiceUnavailable, app.MsgChatNotConfigured},
	{service.ErrAssistantFailed, http.StatusBadGateway, app.MsgChatUpstreamFailure},
	{store.ErrRetryable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	{store.ErrUploadingObject, http.StatusInternalServerError, app.MsgUploadFailed},
}

// statusFromError returns the HTTP status and wire message for err.
// Unknown errors map to 500.
func statusFromError(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err with the request logger and writes the mapped
// error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
