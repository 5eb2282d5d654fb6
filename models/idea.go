// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// IdeaStatus is the review state of an idea.
type IdeaStatus string

const (
	StatusPending  IdeaStatus = "pending"
	StatusApproved IdeaStatus = "approved"
	StatusRejected IdeaStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s IdeaStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an idea in status s may be moved to next.
// Pending ideas may go anywhere; decided ideas only accept their own status,
// which keeps repeated updates idempotent.
func (s IdeaStatus) CanTransitionTo(next IdeaStatus) bool {
	if !next.Valid() {
		return false
	}
	return s == StatusPending || s == next
}

// Label returns the label shown to users.
func (s IdeaStatus) Label() string {
	switch s {
	case StatusPending:
		return "Em Análise"
	case StatusApproved:
		return "Aprovada"
	case StatusRejected:
		return "Reprovada"
	}
	return string(s)
}

// ParseIdeaStatus converts a raw backend value into an IdeaStatus.
func ParseIdeaStatus(s string) (IdeaStatus, error) {
	st := IdeaStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: status %q", ErrUnknownValue, s)
	}
	return st, nil
}

// Idea is a sustainability proposal submitted by a user.
type Idea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Status      IdeaStatus `json:"status"`
	Impact      string     `json:"impact"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`

	// Author is the owner's display name. It is resolved by the client and
	// is not stored with the idea.
	Author string `json:"author,omitempty"`

	FileURL  *string `json:"file_url,omitempty"`
	FileName *string `json:"file_name,omitempty"`
}

// TableName returns the name of the database table associated with Idea.
func (i Idea) TableName() string {
	return "ideas"
}

// HasAttachment reports whether the idea carries an uploaded file.
func (i Idea) HasAttachment() bool {
	return i.FileURL != nil && *i.FileURL != ""
}

// IdeaDraft is the user input for a new idea. Attachment is optional; when
// set it is uploaded before the idea is created.
type IdeaDraft struct {
	Title       string
	Description string
	Category    Category
	Impact      string

	Attachment *AttachmentUpload
}

// IdeaFilter narrows idea listings. Zero values mean "any".
type IdeaFilter struct {
	Status   IdeaStatus `json:"status,omitempty"`
	Category Category   `json:"category,omitempty"`
}
