package services

import (
	"context"

	"go.uber.org/zap"

	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
)

type CategoryServiceInterface interface {
	GetAllCategories(ctx context.Context) (response_models.CategoryMap, error)
}

type CategoryService struct {
	store  repositories.Store
	logger *zap.Logger
}

func NewCategoryService(store repositories.Store, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		store:  store,
		logger: logger,
	}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) (response_models.CategoryMap, error) {
	var categories response_models.CategoryMap
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		list, err := repos.Categories.ListAll(ctx)
		if err != nil {
			return err
		}
		categories = response_models.NewCategoryMap(list)
		return nil
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "list categories", err)
	}
	return categories, nil
}
