// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

type assistantClient struct {
	adapter adapter.ServerAdapter
}

func NewAssistantClient(serverAdapter adapter.ServerAdapter) AssistantClient {
	return &assistantClient{adapter: serverAdapter}
}

// Ask sends one message. Blank messages are rejected without a request.
func (a *assistantClient) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("ask assistant: %w", validators.ErrValidation)
	}

	reply, err := a.adapter.Chat(ctx, message)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("assistant request failed")
		return "", fmt.Errorf("ask assistant: %w", mapAdapterError(err))
	}
	return reply, nil
}

type notificationClient struct {
	adapter adapter.ServerAdapter
}

func NewNotificationClient(serverAdapter adapter.ServerAdapter) NotificationClient {
	return &notificationClient{adapter: serverAdapter}
}

func (n *notificationClient) List(ctx context.Context) ([]models.Notification, error) {
	list, err := n.adapter.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", mapAdapterError(err))
	}
	return list, nil
}

type userAdminClient struct {
	adapter adapter.ServerAdapter
}

func NewUserAdminClient(serverAdapter adapter.ServerAdapter) UserAdminClient {
	return &userAdminClient{adapter: serverAdapter}
}

func (u *userAdminClient) ListUsers(ctx context.Context) ([]models.Profile, error) {
	users, err := u.adapter.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", mapAdapterError(err))
	}
	return users, nil
}

func (u *userAdminClient) SetRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	if !role.Valid() {
		return models.Profile{}, fmt.Errorf("set role: %w", validators.ErrInvalidRole)
	}

	profile, err := u.adapter.UpdateRole(ctx, userID, role)
	if err != nil {
		return models.Profile{}, fmt.Errorf("set role: %w", mapAdapterError(err))
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("role", string(role)).Msg("role updated")
	return profile, nil
}
