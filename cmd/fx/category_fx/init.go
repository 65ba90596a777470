package category_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	NewCategoryService)

func NewCategoryService(store repositories.Store, logger *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(store, logger.Named("categories"))
}
