// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

const refreshKeyPrefix = "refresh:"

// redisSessionRepository keeps refresh sessions in Redis. Tokens are stored
// under the SHA-256 of their value so a dump of the cache cannot be replayed.
type redisSessionRepository struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient parses redisURL and pings the server.
func NewRedisClient(ctx context.Context, redisURL string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewSessionRepository constructs a Redis backed [SessionRepository].
func NewSessionRepository(client *redis.Client, logger *logger.Logger) SessionRepository {
	return &redisSessionRepository{client: client, logger: logger}
}

func (s *redisSessionRepository) key(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return refreshKeyPrefix + hex.EncodeToString(sum[:])
}

func (s *redisSessionRepository) SaveSession(ctx context.Context, refreshToken string, session models.RefreshSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal refresh session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(refreshToken), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("save refresh session: %w", err)
	}
	return nil
}

// ConsumeSession reads and deletes the session with GETDEL. Of two
// concurrent calls with the same token only one gets the session.
func (s *redisSessionRepository) ConsumeSession(ctx context.Context, refreshToken string) (models.RefreshSession, error) {
	raw, err := s.client.GetDel(ctx, s.key(refreshToken)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.RefreshSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.RefreshSession{}, fmt.Errorf("consume refresh session: %w", err)
	}

	var session models.RefreshSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.RefreshSession{}, fmt.Errorf("%w: refresh session: %w", ErrMalformedRecord, err)
	}
	return session, nil
}

// RevokeSession deletes the session. Revoking an unknown token is not an
// error.
func (s *redisSessionRepository) RevokeSession(ctx context.Context, refreshToken string) error {
	if err := s.client.Del(ctx, s.key(refreshToken)).Err(); err != nil {
		return fmt.Errorf("revoke refresh session: %w", err)
	}
	return nil
}
