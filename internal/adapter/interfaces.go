// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the eco-ideas server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx answers are returned as [*StatusError] values that unwrap to the
// sentinels in errors.go, so callers can use [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrUnauthorized] for 401) and read the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/eco-ideas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the eco-ideas
// server. Implementations are responsible for serialisation, bearer token
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the access token attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the access token currently stored in the adapter.
	Token() string

	// SignUp creates an account and its profile. It does not sign in.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, error)

	// SignIn exchanges credentials for a session and stores its access token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error)

	// Refresh rotates the token pair and stores the new access token.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)

	// SignOut revokes the refresh token on the server and forgets the access
	// token, even when the request fails.
	SignOut(ctx context.Context, refreshToken string) error

	GetProfile(ctx context.Context) (models.Profile, error)
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error)
	LookupProfiles(ctx context.Context, ids []string) ([]models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)

	// ListIdeas returns the ideas visible to the caller, newest first.
	ListIdeas(ctx context.Context, filter models.IdeaFilter) ([]models.Idea, error)
	CreateIdea(ctx context.Context, req models.CreateIdeaRequest) (models.Idea, error)
	UploadAttachment(ctx context.Context, upload models.AttachmentUpload) (models.Attachment, error)
	UpdateIdeaStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error)

	ListCategories(ctx context.Context) ([]models.CategoryInfo, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)

	// UpdateGoals returns one result per requested update.
	UpdateGoals(ctx context.Context, updates []models.GoalUpdate) ([]models.GoalUpdateResult, error)
	ActivateCategoryGoals(ctx context.Context, category models.Category) ([]models.Goal, error)
	DeactivateCategoryGoals(ctx context.Context, category models.Category) error

	ListNotifications(ctx context.Context) ([]models.Notification, error)

	// Chat sends one message to the assistant and returns its reply.
	Chat(ctx context.Context, message string) (string, error)

	Version(ctx context.Context) (string, error)
}
