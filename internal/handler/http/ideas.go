// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

// listIdeas accepts optional status and category query filters. The service
// scopes the result to the caller unless they are an administrator.
func (h *Handler) listIdeas(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.IdeaFilter{
		Status:   models.IdeaStatus(query.Get("status")),
		Category: models.Category(query.Get("category")),
	}

	ideas, err := h.services.IdeaService.ListIdeas(r.Context(), id, filter)
	if err != nil {
		writeServiceError(w, r, err, "list ideas failed")
		return
	}

	_, _ = utils.WriteJSON(w, ideas, http.StatusOK)
}

func (h *Handler) createIdea(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.CreateIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	idea, err := h.services.IdeaService.CreateIdea(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err, "create idea failed")
		return
	}

	logger.FromRequest(r).Info().Str("idea_id", idea.ID).Str("user_id", id).Msg("idea created")
	_, _ = utils.WriteJSON(w, idea, http.StatusCreated)
}

func (h *Handler) updateIdeaStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ideaID, ok := pathID(w, r, app.MsgIdeaNotFound)
	if !ok {
		return
	}
	idea, err := h.services.IdeaService.UpdateStatus(r.Context(), ideaID, req.Status)
	if err != nil {
		writeServiceError(w, r, err, "idea status update failed")
		return
	}

	_, _ = utils.WriteJSON(w, idea, http.StatusOK)
}
