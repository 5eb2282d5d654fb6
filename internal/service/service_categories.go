// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/models"
)

type categoryService struct {
	categories store.CategoryRepository
	logger     *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categories: categories, logger: logger}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.CategoryInfo, error) {
	return s.categories.ListCategories(ctx)
}
