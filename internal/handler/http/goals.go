// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list categories failed")
		return
	}

	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.services.GoalService.ListGoals(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list goals failed")
		return
	}

	_, _ = utils.WriteJSON(w, goals, http.StatusOK)
}

// updateGoals always answers 200 with one result per update; failed keys
// carry their error message.
func (h *Handler) updateGoals(w http.ResponseWriter, r *http.Request) {
	var req models.GoalsUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	results := h.services.GoalService.UpdateGoals(r.Context(), req.Updates)
	_, _ = utils.WriteJSON(w, models.GoalsUpdateResponse{Results: results}, http.StatusOK)
}

func (h *Handler) activateCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "name"))

	goals, err := h.services.GoalService.ActivateCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err, "category activation failed")
		return
	}

	_, _ = utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) deactivateCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "name"))

	if err := h.services.GoalService.DeactivateCategory(r.Context(), category); err != nil {
		writeServiceError(w, r, err, "category deactivation failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
