// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/models"
)

func TestListNotifications(t *testing.T) {
	services := newTestServices()
	services.NotificationService = &fakeNotificationService{
		listFn: func(_ context.Context, userID string) ([]models.Notification, error) {
			return []models.Notification{
				models.StatusNotification(models.Idea{UserID: userID, Title: "Reuso", Status: models.StatusApproved}),
			}, nil
		},
	}

	rr := do(t, newTestRouter(services), http.MethodGet, "/api/notifications", userToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	notifications := decodeBody[[]models.Notification](t, rr)
	require.Len(t, notifications, 1)
	assert.Equal(t, "u-1", notifications[0].UserID)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Type)
}
