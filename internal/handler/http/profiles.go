// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/eco-ideas/internal/app"

	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

func (h *Handler) getMyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get profile failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createMyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.CreateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.services.ProfileService.BackfillProfile(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err, "profile backfill failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) lookupProfiles(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileLookupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// ids that are not UUIDs match no profile
	ids := slices.DeleteFunc(slices.Clone(req.IDs), func(id string) bool {
		_, err := uuid.Parse(id)
		return err != nil
	})

	profiles, err := h.services.ProfileService.LookupProfiles(r.Context(), ids)
	if err != nil {
		writeServiceError(w, r, err, "profile lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list profiles failed")
		return
	}

	_, _ = utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req models.RoleUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, ok := pathID(w, r, app.MsgProfileNotFound)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		writeServiceError(w, r, err, "role update failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
