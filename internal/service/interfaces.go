// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/eco-ideas/models"
)

// AuthService registers accounts and manages access/refresh token pairs.
type AuthService interface {
	// SignUp creates the account and its profile. It never returns a
	// session; the caller signs in afterwards.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error)

	// Refresh rotates the refresh token: the presented one is revoked and a
	// new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)
	SignOut(ctx context.Context, refreshToken string) error

	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and maintains user profiles, the only source of
// roles.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// BackfillProfile creates the missing profile of an existing account
	// with role user.
	BackfillProfile(ctx context.Context, userID string, req models.CreateProfileRequest) (models.Profile, error)
	LookupProfiles(ctx context.Context, userIDs []string) ([]models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)

	// IsAdmin reports whether userID holds the admin role. A user without
	// a profile is not an administrator.
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// IdeaService lists, creates and reviews ideas.
type IdeaService interface {
	// ListIdeas returns every idea for administrators and only the caller's
	// own ideas otherwise, newest first.
	ListIdeas(ctx context.Context, userID string, filter models.IdeaFilter) ([]models.Idea, error)
	CreateIdea(ctx context.Context, userID string, req models.CreateIdeaRequest) (models.Idea, error)
	UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error)
}

// AttachmentService stores idea attachments.
type AttachmentService interface {
	Upload(ctx context.Context, userID string, upload models.AttachmentUpload) (models.Attachment, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.CategoryInfo, error)
}

// GoalService manages the goal settings.
type GoalService interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)

	// UpdateGoals applies every update independently and reports one result
	// per update, in request order.
	UpdateGoals(ctx context.Context, updates []models.GoalUpdate) []models.GoalUpdateResult

	ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error)
	DeactivateCategory(ctx context.Context, category models.Category) error

	// ReconcileGoals re-creates missing period goals of every tracked
	// category.
	ReconcileGoals(ctx context.Context) error
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
}

// ChatService proxies a single message to the sustainability assistant.
type ChatService interface {
	Chat(ctx context.Context, message string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues unique string identifiers.
type IDGenerator interface {
	Generate() string
}
