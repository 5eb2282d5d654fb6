// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/models"
)

// MaxLookupIDs bounds one batch profile lookup.
const MaxLookupIDs = 200

type profileService struct {
	profiles store.ProfileRepository
	accounts store.AccountRepository
	logger   *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, accounts store.AccountRepository, logger *logger.Logger) ProfileService {
	return &profileService{profiles: profiles, accounts: accounts, logger: logger}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return s.profiles.GetProfile(ctx, userID)
}

// BackfillProfile is used by clients that signed in with an account whose
// profile row is missing. The e-mail comes from the account; the role is
// always user.
func (s *profileService) BackfillProfile(ctx context.Context, userID string, req models.CreateProfileRequest) (models.Profile, error) {
	account, err := s.accounts.FindAccountByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("backfill profile: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = models.NameFromEmail(account.Email)
	}

	profile, err := s.profiles.CreateProfile(ctx, models.Profile{
		UserID: userID,
		Name:   name,
		Email:  account.Email,
		Role:   models.RoleUser,
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("backfill profile: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("profile backfilled")
	return profile, nil
}

// LookupProfiles deduplicates ids and returns the profiles that exist.
func (s *profileService) LookupProfiles(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	seen := make(map[string]struct{}, len(userIDs))
	unique := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) > MaxLookupIDs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyIDs, len(unique), MaxLookupIDs)
	}

	return s.profiles.GetProfiles(ctx, unique)
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.ListProfiles(ctx)
}

func (s *profileService) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	if !role.Valid() {
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := s.profiles.UpdateRole(ctx, userID, role)
	if err != nil {
		return models.Profile{}, err
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Str("role", string(role)).
		Msg("role updated")
	return profile, nil
}

func (s *profileService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.Role == models.RoleAdmin, nil
}
