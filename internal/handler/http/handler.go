// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// filesDir is served under store.FilesRoute when attachments live on
	// local disk.
	filesDir string

	signInLimiter *RateLimiter
	chatLimiter   *RateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, filesDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		cfg:           cfg,
		filesDir:      filesDir,
		signInLimiter: NewRateLimiter(cfg.SignInRate, cfg.SignInBurst),
		chatLimiter:   NewRateLimiter(cfg.ChatRate, cfg.ChatBurst),
		logger:        logger,
	}
}
