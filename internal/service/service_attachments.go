// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

type attachmentService struct {
	storage   store.AttachmentStorage
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewAttachmentService(storage store.AttachmentStorage, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		storage:   storage,
		validator: validators.NewIdeaValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Upload stores the file under {user_id}/{unix_millis}.{ext} and returns its
// public URL along with the original file name.
func (s *attachmentService) Upload(ctx context.Context, userID string, upload models.AttachmentUpload) (models.Attachment, error) {
	if err := s.validator.Validate(ctx, upload); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	fileName := filepath.Base(upload.FileName)
	key := models.AttachmentKey(userID, fileName, s.now())

	url, err := s.storage.PutAttachment(ctx, key, upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("upload attachment: %w", err)
	}

	logger.FromContext(ctx).Info().Str("key", key).Int64("size", upload.Size).Msg("attachment stored")
	return models.Attachment{URL: url, FileName: fileName}, nil
}
