// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

func TestGetMyProfile(t *testing.T) {
	services := newTestServices()
	services.ProfileService = &fakeProfileService{
		getFn: func(_ context.Context, userID string) (models.Profile, error) {
			if userID == "u-1" {
				return models.Profile{UserID: "u-1", Name: "Ana", Role: models.RoleUser}, nil
			}
			return models.Profile{}, store.ErrProfileNotFound
		},
	}
	router := newTestRouter(services)

	rr := do(t, router, http.MethodGet, "/api/profiles/me", userToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Ana", decodeBody[models.Profile](t, rr).Name)

	rr = do(t, router, http.MethodGet, "/api/profiles/me", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgProfileNotFound, errorBody(t, rr))
}

func TestCreateMyProfile(t *testing.T) {
	services := newTestServices()
	services.ProfileService = &fakeProfileService{
		backfillFn: func(_ context.Context, userID string, req models.CreateProfileRequest) (models.Profile, error) {
			if userID == "admin-1" {
				return models.Profile{}, store.ErrProfileAlreadyExists
			}
			return models.Profile{UserID: userID, Name: req.Name, Role: models.RoleUser}, nil
		},
	}
	router := newTestRouter(services)

	rr := do(t, router, http.MethodPost, "/api/profiles/me", userToken, models.CreateProfileRequest{Name: "ana"})
	require.Equal(t, http.StatusCreated, rr.Code)
	profile := decodeBody[models.Profile](t, rr)
	assert.Equal(t, "u-1", profile.UserID)
	assert.Equal(t, "ana", profile.Name)

	rr = do(t, router, http.MethodPost, "/api/profiles/me", adminToken, models.CreateProfileRequest{Name: "root"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, app.MsgProfileAlreadyExists, errorBody(t, rr))
}

func TestLookupProfiles(t *testing.T) {
	services := newTestServices()
	services.ProfileService = &fakeProfileService{
		lookupFn: func(_ context.Context, ids []string) ([]models.Profile, error) {
			if len(ids) > 2 {
				return nil, service.ErrTooManyIDs
			}
			out := make([]models.Profile, 0, len(ids))
			for _, id := range ids {
				out = append(out, models.Profile{UserID: id, Name: "name-" + id})
			}
			return out, nil
		},
	}
	router := newTestRouter(services)

	const (
		a = "00000000-0000-4000-8000-00000000000a"
		b = "00000000-0000-4000-8000-00000000000b"
		c = "00000000-0000-4000-8000-00000000000c"
	)

	rr := do(t, router, http.MethodPost, "/api/profiles/lookup", userToken, models.ProfileLookupRequest{IDs: []string{a, b}})
	require.Equal(t, http.StatusOK, rr.Code)
	profiles := decodeBody[[]models.Profile](t, rr)
	require.Len(t, profiles, 2)
	assert.Equal(t, "name-"+b, profiles[1].Name)

	rr = do(t, router, http.MethodPost, "/api/profiles/lookup", userToken, models.ProfileLookupRequest{IDs: []string{a, "legacy-id", b}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Profile](t, rr), 2, "malformed ids are skipped")

	rr = do(t, router, http.MethodPost, "/api/profiles/lookup", userToken, models.ProfileLookupRequest{IDs: []string{a, b, c}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminProfiles(t *testing.T) {
	services := newTestServices()
	services.ProfileService = &fakeProfileService{
		listFn: func(context.Context) ([]models.Profile, error) {
			return []models.Profile{{UserID: "admin-1", Role: models.RoleAdmin}, {UserID: "u-1", Role: models.RoleUser}}, nil
		},
		roleFn: func(_ context.Context, userID string, role models.Role) (models.Profile, error) {
			if !role.Valid() {
				return models.Profile{}, validators.ErrInvalidRole
			}
			return models.Profile{UserID: userID, Role: role}, nil
		},
	}
	router := newTestRouter(services)

	t.Run("list", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/api/admin/profiles", adminToken, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]models.Profile](t, rr), 2)
	})

	const targetID = "3f1e2d4c-5b6a-4789-8abc-def012345678"

	t.Run("promote", func(t *testing.T) {
		rr := do(t, router, http.MethodPatch, "/api/admin/profiles/"+targetID+"/role", adminToken, models.RoleUpdateRequest{Role: models.RoleAdmin})
		require.Equal(t, http.StatusOK, rr.Code)
		profile := decodeBody[models.Profile](t, rr)
		assert.Equal(t, targetID, profile.UserID)
		assert.Equal(t, models.RoleAdmin, profile.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		rr := do(t, router, http.MethodPatch, "/api/admin/profiles/"+targetID+"/role", adminToken, `{"role":"owner"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := do(t, router, http.MethodPatch, "/api/admin/profiles/u-1/role", adminToken, models.RoleUpdateRequest{Role: models.RoleAdmin})
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, app.MsgProfileNotFound, errorBody(t, rr))
	})

	t.Run("user cannot list", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/api/admin/profiles", userToken, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
