// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/eco-ideas/models"
)

// AccountRepository stores sign-in credentials.
type AccountRepository interface {
	// CreateAccount inserts the account and its profile atomically.
	CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, userID string) (models.Account, error)
}

// ProfileRepository stores user profiles, the only source of roles.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	GetProfiles(ctx context.Context, userIDs []string) ([]models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)
}

// IdeaQuery filters idea listings. An empty OwnerID lists every owner.
type IdeaQuery struct {
	OwnerID  string
	Status   models.IdeaStatus
	Category models.Category
}

// IdeaRepository stores ideas. Ideas are never deleted.
type IdeaRepository interface {
	ListIdeas(ctx context.Context, query IdeaQuery) ([]models.Idea, error)
	CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error)

	// UpdateStatus moves an idea to status. changed is false when the idea
	// already had that status.
	UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (idea models.Idea, changed bool, err error)
}

// CategoryRepository reads the category registry.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.CategoryInfo, error)
}

// GoalRepository stores goals in the settings table.
type GoalRepository interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, update models.GoalUpdate) error

	// ActivateCategory marks the category as tracked and creates its missing
	// period goals with default values, in one transaction.
	ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error)

	// DeactivateCategory removes all period goals of the category and clears
	// its tracked flag, in one transaction.
	DeactivateCategory(ctx context.Context, category models.Category) error
}

// NotificationRepository stores user notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n models.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
}

// SessionRepository keeps refresh sessions until they expire or are revoked.
type SessionRepository interface {
	SaveSession(ctx context.Context, refreshToken string, session models.RefreshSession, ttl time.Duration) error
	// ConsumeSession returns and deletes the session in one step, so a
	// refresh token is accepted at most once.
	ConsumeSession(ctx context.Context, refreshToken string) (models.RefreshSession, error)
	RevokeSession(ctx context.Context, refreshToken string) error
}

// AttachmentStorage persists uploaded files and returns their public URL.
type AttachmentStorage interface {
	PutAttachment(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// AttachmentKey returns the key behind a URL issued by PutAttachment;
	// ok is false for any other URL.
	AttachmentKey(publicURL string) (key string, ok bool)
}
