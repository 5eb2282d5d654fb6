// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Profile is the backend record describing a user: display name, e-mail and
// role. Its UserID equals the account id.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Profile.
func (p Profile) TableName() string {
	return "profiles"
}

// Principal is the authenticated identity as seen by the client.
//
// Provisional is true while the principal was synthesized from the session
// itself (e-mail local part, role user) and the authoritative profile has not
// been fetched yet.
type Principal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Provisional bool   `json:"provisional"`
}

// IsAdmin reports whether the principal holds the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// PrincipalFromProfile builds an authoritative principal out of a profile.
func PrincipalFromProfile(p Profile) Principal {
	return Principal{
		ID:    p.UserID,
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}
}

// FallbackPrincipal synthesizes a provisional principal for a fresh session.
// The display name is the local part of the e-mail and the role is always
// RoleUser; it never grants administrator access.
func FallbackPrincipal(userID, email string) Principal {
	return Principal{
		ID:          userID,
		Name:        NameFromEmail(email),
		Email:       email,
		Role:        RoleUser,
		Provisional: true,
	}
}

// NameFromEmail returns the part of an e-mail address before '@'.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	if name == "" {
		return "Usuário"
	}
	return name
}
