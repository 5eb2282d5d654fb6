// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

type ideaService struct {
	ideas         store.IdeaRepository
	attachments   store.AttachmentStorage
	profiles      ProfileService
	notifications store.NotificationRepository
	ids           IDGenerator
	validator     validators.Validator
	logger        *logger.Logger
}

func NewIdeaService(ideas store.IdeaRepository, attachments store.AttachmentStorage, profiles ProfileService, notifications store.NotificationRepository, ids IDGenerator, logger *logger.Logger) IdeaService {
	return &ideaService{
		ideas:         ideas,
		attachments:   attachments,
		profiles:      profiles,
		notifications: notifications,
		ids:           ids,
		validator:     validators.NewIdeaValidator(),
		logger:        logger,
	}
}

func (s *ideaService) ListIdeas(ctx context.Context, userID string, filter models.IdeaFilter) ([]models.Idea, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidStatus)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCategory)
	}

	admin, err := s.profiles.IsAdmin(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}

	query := store.IdeaQuery{Status: filter.Status, Category: filter.Category}
	if !admin {
		query.OwnerID = userID
	}

	return s.ideas.ListIdeas(ctx, query)
}

// CreateIdea stores a new pending idea owned by userID. An attachment must
// be a file userID uploaded through the attachment storage.
func (s *ideaService) CreateIdea(ctx context.Context, userID string, req models.CreateIdeaRequest) (models.Idea, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Idea{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if req.FileURL == nil || *req.FileURL == "" {
		req.FileURL, req.FileName = nil, nil
	} else if key, ok := s.attachments.AttachmentKey(*req.FileURL); !ok || !strings.HasPrefix(key, userID+"/") {
		logger.FromContext(ctx).Info().Str("user_id", userID).Str("file_url", *req.FileURL).Msg("attachment url rejected")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrForeignFile)
	}

	idea := models.Idea{
		ID:          s.ids.Generate(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Status:      models.StatusPending,
		Impact:      strings.TrimSpace(req.Impact),
		UserID:      userID,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
	}

	created, err := s.ideas.CreateIdea(ctx, idea)
	if err != nil {
		return models.Idea{}, fmt.Errorf("create idea: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("idea_id", created.ID).
		Str("category", string(created.Category)).
		Msg("idea created")
	return created, nil
}

// UpdateStatus applies the transition and, when the status actually
// changed, notifies the owner. A failed notification is logged only.
func (s *ideaService) UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error) {
	if !status.Valid() {
		return models.Idea{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidStatus)
	}

	idea, changed, err := s.ideas.UpdateStatus(ctx, ideaID, status)
	if err != nil {
		return models.Idea{}, err
	}
	if !changed {
		return idea, nil
	}

	n := models.StatusNotification(idea)
	n.ID = s.ids.Generate()
	if err := s.notifications.CreateNotification(ctx, n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("idea_id", idea.ID).
			Msg("failed to notify idea owner")
	}

	return idea, nil
}
