// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

type notificationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository].
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n models.Notification) error {
	if _, err := r.db.ExecContext(ctx, createNotification, n.ID, n.UserID, n.Title, n.Message, string(n.Type)); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return nil
}

// ListNotifications returns the 50 most recent notifications of the user.
func (r *notificationRepository) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx, listNotifications, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*notificationRepository.ListNotifications").
			Str("user_id", userID).
			Msg("failed to list notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var (
			n   models.Notification
			typ string
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &typ, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
		}
		n.Type = models.NotificationType(typ)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return notifications, nil
}
