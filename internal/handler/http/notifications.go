// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/utils"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	notifications, err := h.services.NotificationService.ListNotifications(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "list notifications failed")
		return
	}

	_, _ = utils.WriteJSON(w, notifications, http.StatusOK)
}
