// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// typed context keys, JWT issuing and parsing, JSON responses and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so string keys set by other
// packages never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id (account UUID) in a request
// context.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190f1c2-...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored by the auth middleware.
// ok is false when the value is missing, empty or of another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
