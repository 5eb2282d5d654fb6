// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/eco-ideas/models"
)

// Field names accepted by [IdeaValidator.Validate].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldStatus      = "status"
	FieldPeriod      = "period"
	FieldValue       = "value"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldFileName    = "file_name"
)

// MinPasswordLength is the shortest password sign-up accepts.
const MinPasswordLength = 6

// IdeaValidator validates idea drafts and requests, goal updates, status
// and role changes, and sign-up credentials.
type IdeaValidator struct{}

func NewIdeaValidator() Validator {
	return &IdeaValidator{}
}

func (v *IdeaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IdeaDraft:
		return v.validateIdea(value.Title, value.Description, value.Category, fields...)
	case *models.IdeaDraft:
		return v.validateIdea(value.Title, value.Description, value.Category, fields...)

	case models.CreateIdeaRequest:
		return v.validateIdea(value.Title, value.Description, value.Category, fields...)
	case *models.CreateIdeaRequest:
		return v.validateIdea(value.Title, value.Description, value.Category, fields...)

	case models.GoalUpdate:
		return v.validateGoalUpdate(value, fields...)
	case *models.GoalUpdate:
		return v.validateGoalUpdate(*value, fields...)

	case models.StatusUpdateRequest:
		if !value.Status.Valid() {
			return ErrInvalidStatus
		}
		return nil

	case models.RoleUpdateRequest:
		if !value.Role.Valid() {
			return ErrInvalidRole
		}
		return nil

	case models.SignUpRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case models.SignInRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)

	case models.AttachmentUpload:
		if strings.TrimSpace(value.FileName) == "" {
			return ErrEmptyFileName
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *IdeaValidator) validateIdea(title, description string, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if strings.TrimSpace(description) == "" {
				return ErrEmptyDescription
			}
		case FieldCategory:
			if !category.Valid() {
				return ErrInvalidCategory
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *IdeaValidator) validateGoalUpdate(update models.GoalUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategory, FieldPeriod, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if !update.Category.Valid() {
				return ErrInvalidCategory
			}
		case FieldPeriod:
			if !update.Period.Valid() {
				return ErrInvalidPeriod
			}
		case FieldValue:
			if update.Value <= 0 || math.IsNaN(update.Value) || math.IsInf(update.Value, 0) {
				return ErrInvalidGoalValue
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *IdeaValidator) validateCredentials(email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !strings.Contains(strings.TrimSpace(email), "@") {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if len([]rune(password)) < MinPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
