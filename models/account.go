// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account holds sign-in credentials. It never leaves the server.
type Account struct {
	// UserID is the UUID shared with the account's profile.
	UserID string `json:"-"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// PasswordHash is the argon2id encoded hash; the plaintext password is
	// never stored.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Account.
func (a Account) TableName() string {
	return "accounts"
}
