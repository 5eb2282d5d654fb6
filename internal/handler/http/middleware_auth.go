// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id in the request
// context with [utils.WithUserID]. Every rejection is a 401 with
// [app.MsgTokenIsExpiredOrInvalid], so the client cannot tell a missing
// token from an expired one.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// adminOnly must run after auth. The role is read from the profile on every
// request; tokens carry no role.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Err(ErrNoUserID).Msg("admin check without authentication")
			utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
			return
		}

		isAdmin, err := h.services.ProfileService.IsAdmin(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "admin check failed")
			return
		}
		if !isAdmin {
			log.Warn().Str("user_id", userID).Str("uri", r.RequestURI).Msg("non-admin called an admin route")
			utils.WriteError(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// userID returns the authenticated user id or writes a 401.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoUserID).Send()
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
	}
	return id, ok
}
