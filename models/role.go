// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Role is the access level of a principal. It is authoritative only when read
// from the backend profile record.
type Role string

const (
	// RoleUser is the default role assigned to every new profile.
	RoleUser Role = "user"
	// RoleAdmin grants the review and configuration surface.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole converts a raw backend value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: role %q", ErrUnknownValue, s)
	}
	return r, nil
}
