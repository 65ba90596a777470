package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trivia/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	ListAll(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id int) (*db_models.Category, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns nil, nil when no category has the given id.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
