// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is a message addressed to one user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// TableName returns the name of the database table associated with
// Notification.
func (n Notification) TableName() string {
	return "notifications"
}

// StatusNotification builds the notification sent to the owner of an idea
// whose status changed.
func StatusNotification(idea Idea) Notification {
	n := Notification{UserID: idea.UserID}
	switch idea.Status {
	case StatusApproved:
		n.Title = "Ideia aprovada"
		n.Message = "Sua ideia \"" + idea.Title + "\" foi aprovada."
		n.Type = NotificationSuccess
	case StatusRejected:
		n.Title = "Ideia reprovada"
		n.Message = "Sua ideia \"" + idea.Title + "\" foi reprovada."
		n.Type = NotificationWarning
	default:
		n.Title = "Ideia em análise"
		n.Message = "Sua ideia \"" + idea.Title + "\" voltou para análise."
		n.Type = NotificationInfo
	}
	return n
}
