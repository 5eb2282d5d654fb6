// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/utils"
)

// Services groups the server-side services.
type Services struct {
	AuthService         AuthService
	ProfileService      ProfileService
	IdeaService         IdeaService
	AttachmentService   AttachmentService
	CategoryService     CategoryService
	GoalService         GoalService
	NotificationService NotificationService
	ChatService         ChatService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	profiles := NewProfileService(storages.ProfileRepository, storages.AccountRepository, logger)

	return &Services{
		AuthService:         NewAuthService(storages.AccountRepository, storages.SessionRepository, ids, cfg.App, logger),
		ProfileService:      profiles,
		IdeaService:         NewIdeaService(storages.IdeaRepository, storages.AttachmentStorage, profiles, storages.NotificationRepository, ids, logger),
		AttachmentService:   NewAttachmentService(storages.AttachmentStorage, logger),
		CategoryService:     NewCategoryService(storages.CategoryRepository, logger),
		GoalService:         NewGoalService(storages.GoalRepository, storages.CategoryRepository, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, logger),
		ChatService:         NewChatService(cfg.AI, logger),
		AppInfoService:      appInfo,
	}, nil
}
