// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
)

type ClientServices struct {
	Sessions      SessionStore
	Ideas         IdeaCache
	Goals         GoalStore
	Assistant     AssistantClient
	Notifications NotificationClient
	Users         UserAdminClient
	RefreshJob    TokenRefreshJob
}

func NewClientServices(state store.LocalStateRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessions := NewSessionStore(serverAdapter, state, logger)

	return &ClientServices{
		Sessions:      sessions,
		Ideas:         NewIdeaCache(serverAdapter, sessions, logger),
		Goals:         NewGoalStore(serverAdapter, logger),
		Assistant:     NewAssistantClient(serverAdapter),
		Notifications: NewNotificationClient(serverAdapter),
		Users:         NewUserAdminClient(serverAdapter),
		RefreshJob:    NewTokenRefreshJob(sessions),
	}
}
