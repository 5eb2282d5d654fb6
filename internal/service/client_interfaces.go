// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/eco-ideas/models"
)

// SessionChangeKind names an auth event.
type SessionChangeKind string

const (
	SessionSignedIn        SessionChangeKind = "signed_in"
	SessionSignedOut       SessionChangeKind = "signed_out"
	SessionTokenRefreshed  SessionChangeKind = "token_refreshed"
	SessionProfileResolved SessionChangeKind = "profile_resolved"
)

// SessionChange is pushed to every subscriber of a [SessionStore].
// Generation changes whenever a different session is established or the
// session ends; token refreshes keep it.
type SessionChange struct {
	Kind          SessionChangeKind
	Authenticated bool
	Session       models.Session
	Principal     models.Principal
	Generation    uint64
}

// SessionStore is the client's single source of truth for who is signed in.
type SessionStore interface {
	// Restore leaves the loading state. A persisted session is re-established
	// with the cached principal marked provisional, and its profile is
	// resolved in the background.
	Restore(ctx context.Context) error

	// Loading reports whether Restore has not completed yet.
	Loading() bool

	CurrentSession() (models.Session, bool)
	CurrentPrincipal() (models.Principal, bool)
	Generation() uint64

	// Subscribe registers fn for every session change. Callbacks run on the
	// goroutine that caused the change and must not block.
	Subscribe(fn func(SessionChange)) (unsubscribe func())

	// SignIn establishes a session. A fallback principal is available when
	// it returns; the authoritative profile is resolved in the background.
	SignIn(ctx context.Context, email, password string) error

	// SignUp creates an account. It never signs in.
	SignUp(ctx context.Context, email, password, name string) error

	// SignOut is idempotent. Server-side revocation is best effort.
	SignOut(ctx context.Context) error

	// RefreshToken rotates the token pair. An unauthorized answer ends the
	// session locally.
	RefreshToken(ctx context.Context) error

	// IsAdministrator is false without a principal.
	IsAdministrator() bool

	// Wait blocks until background profile resolutions have finished.
	Wait()
}

// IdeaCache keeps the ideas visible to the current principal.
type IdeaCache interface {
	// Refresh reloads the cache. It is a no-op without a session.
	Refresh(ctx context.Context) error

	// Create uploads the optional attachment, then creates a pending idea
	// and prepends it to the cache. It is never retried.
	Create(ctx context.Context, draft models.IdeaDraft) (models.Idea, error)

	// UpdateStatus changes the status of an idea and updates the cached
	// entry in place. Repeating it with the same status is a no-op.
	UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error)

	// ForUser returns a copy of the cached ideas owned by principalID.
	ForUser(principalID string) []models.Idea

	// All returns a copy of the cache.
	All() []models.Idea

	// Filter returns a copy of the cached ideas matching filter.
	Filter(filter models.IdeaFilter) []models.Idea

	// Watch refreshes on sign-in and clears on sign-out until stop is
	// called.
	Watch(ctx context.Context) (stop func())

	// Wait blocks until refreshes started by Watch have finished.
	Wait()
}

// GoalFailure reports a goal update that was not applied.
type GoalFailure struct {
	Key    models.GoalKey
	Reason string
	Err    error
}

// GoalStore keeps goal targets and the category registry.
type GoalStore interface {
	Load(ctx context.Context) error

	// Get returns the stored target or the built-in default.
	Get(category models.Category, period models.Period) float64

	Goals() []models.Goal
	Categories() []models.CategoryInfo
	Registry() models.CategoryRegistry

	// SetMany applies every update it can and reports the others.
	SetMany(ctx context.Context, updates []models.GoalUpdate) []GoalFailure

	// ActivateCategory starts tracking a category and returns its three
	// period goals.
	ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error)

	// DeactivateCategory removes the three period goals of a category.
	DeactivateCategory(ctx context.Context, category models.Category) error

	Clear()
}

// AssistantClient asks the sustainability assistant.
type AssistantClient interface {
	Ask(ctx context.Context, message string) (string, error)
}

// NotificationClient reads the principal's notifications.
type NotificationClient interface {
	List(ctx context.Context) ([]models.Notification, error)
}

// UserAdminClient manages users. The server only accepts administrators.
type UserAdminClient interface {
	ListUsers(ctx context.Context) ([]models.Profile, error)
	SetRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)
}

// TokenRefreshJob defines the contract for a background worker that
// periodically rotates the session's token pair.
type TokenRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 10 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
