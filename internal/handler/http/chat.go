// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

// chat answers {"reply": ...} or {"error": ...}; both shapes are
// models.ChatResponse.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.services.ChatService.Chat(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, r, err, "chat failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.ChatResponse{Reply: reply}, http.StatusOK)
}
