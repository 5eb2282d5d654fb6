// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// Storages groups every server-side repository.
type Storages struct {
	AccountRepository      AccountRepository
	ProfileRepository      ProfileRepository
	IdeaRepository         IdeaRepository
	CategoryRepository     CategoryRepository
	GoalRepository         GoalRepository
	NotificationRepository NotificationRepository
	SessionRepository      SessionRepository
	AttachmentStorage      AttachmentStorage

	// FilesDir is set when attachments are stored on local disk and must be
	// served by the HTTP server under FilesRoute.
	FilesDir string

	db    *DB
	redis *redis.Client
}

// NewStorages connects to Postgres and Redis, applies migrations and selects
// the attachment backend: the object store when an endpoint is configured,
// the local directory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	redisClient, err := NewRedisClient(ctx, cfg.Cache.RedisURL, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Storages{
		AccountRepository:      NewAccountRepository(db, logger),
		ProfileRepository:      NewProfileRepository(db, logger),
		IdeaRepository:         NewIdeaRepository(db, logger),
		CategoryRepository:     NewCategoryRepository(db, logger),
		GoalRepository:         NewGoalRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
		SessionRepository:      NewSessionRepository(redisClient, logger),
		db:                     db,
		redis:                  redisClient,
	}

	if cfg.Objects.Endpoint != "" {
		s.AttachmentStorage, err = NewMinioAttachmentStorage(ctx, cfg.Objects, logger)
	} else {
		s.FilesDir = cfg.Files.AttachmentsDir
		s.AttachmentStorage, err = NewFileAttachmentStorage(cfg.Files.AttachmentsDir, cfg.Files.PublicURL, logger)
	}
	if err != nil {
		return nil, errors.Join(err, s.Close())
	}

	return s, nil
}

// Ping checks the database and the cache.
func (s *Storages) Ping(ctx context.Context) error {
	return errors.Join(s.db.PingContext(ctx), s.redis.Ping(ctx).Err())
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	return errors.Join(s.db.Close(), s.redis.Close())
}
