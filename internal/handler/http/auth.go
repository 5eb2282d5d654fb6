// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

// decodeJSON reads the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// pathID reads the {id} URL parameter. Identifiers are UUIDs, so anything
// else cannot name a row and answers 404 with notFound.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		logger.FromRequest(r).Info().Str("id", id).Msg("malformed id in path")
		utils.WriteError(w, notFound, http.StatusNotFound)
		return "", false
	}
	return id, true
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "sign up failed")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", profile.UserID).Msg("account registered")
	_, _ = utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "sign in failed")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", session.UserID).Msg("user signed in")
	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err, "token refresh failed")
		return
	}

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

// signOut revokes the presented refresh token. An unknown token is not an
// error.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AuthService.SignOut(r.Context(), req.RefreshToken); err != nil {
		writeServiceError(w, r, err, "sign out failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
