// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh and
// POST /api/auth/signout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateProfileRequest backfills the profile of the calling user.
type CreateProfileRequest struct {
	Name string `json:"name"`
}

// ProfileLookupRequest asks for several profiles at once.
type ProfileLookupRequest struct {
	IDs []string `json:"ids"`
}

// RoleUpdateRequest changes the role of a profile.
type RoleUpdateRequest struct {
	Role Role `json:"role"`
}

// CreateIdeaRequest is the body of POST /api/ideas.
type CreateIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Impact      string   `json:"impact"`
	FileURL     *string  `json:"file_url,omitempty"`
	FileName    *string  `json:"file_name,omitempty"`
}

// StatusUpdateRequest is the body of PATCH /api/admin/ideas/{id}/status.
type StatusUpdateRequest struct {
	Status IdeaStatus `json:"status"`
}

// GoalsUpdateRequest is the body of PUT /api/admin/goals.
type GoalsUpdateRequest struct {
	Updates []GoalUpdate `json:"updates"`
}

// GoalsUpdateResponse reports the outcome of every requested update.
type GoalsUpdateResponse struct {
	Results []GoalUpdateResult `json:"results"`
}

// ErrorResponse is the JSON error body written by the server.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
