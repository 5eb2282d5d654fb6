// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/models"
)

type notificationService struct {
	notifications store.NotificationRepository
	logger        *logger.Logger
}

func NewNotificationService(notifications store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{notifications: notifications, logger: logger}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.ListNotifications(ctx, userID)
}
