package repositories

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"trivia/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	Create(ctx context.Context, question *db_models.Question) (int, error)
	Delete(ctx context.Context, id int) error

	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int) (*db_models.Question, error)
	GetByText(ctx context.Context, text string) (*db_models.Question, error)
	ListPage(ctx context.Context, page, pageSize int) ([]db_models.Question, error)
	Search(ctx context.Context, term string) ([]db_models.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]db_models.Question, error)
	ListQuizCandidates(ctx context.Context, categoryID int, excludedIDs []int) ([]db_models.Question, error)
}

// AllCategories disables the category filter in ListQuizCandidates.
const AllCategories = 0

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepositoryInterface {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *db_models.Question) (int, error) {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return 0, err
	}
	return question.ID, nil
}

func (r *questionRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&db_models.Question{}, "id = ?", id).Error
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&db_models.Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ────────────────────────────────────────────────────────────────
// Single-row lookups return nil, nil when no row matches.
// ────────────────────────────────────────────────────────────────

func (r *questionRepository) GetByID(ctx context.Context, id int) (*db_models.Question, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *questionRepository) GetByText(ctx context.Context, text string) (*db_models.Question, error) {
	return r.first(ctx, "question = ?", text)
}

func (r *questionRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).Where(query, args...).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) ListPage(ctx context.Context, page, pageSize int) ([]db_models.Question, error) {
	if page < 1 || pageSize < 1 || page-1 > math.MaxInt/pageSize {
		return []db_models.Question{}, nil
	}

	var questions []db_models.Question
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Order("id").Offset(offset).Limit(pageSize)
	}).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches term as a case-insensitive substring of the question text.
// LIKE wildcards inside term are matched literally. Both sides are folded by the
// database's LOWER, so non-ASCII folding is only as good as the driver's.
func (r *questionRepository) Search(ctx context.Context, term string) ([]db_models.Question, error) {
	pattern := "%" + escapeLike(term) + "%"

	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListQuizCandidates(ctx context.Context, categoryID int, excludedIDs []int) ([]db_models.Question, error) {
	query := r.db.WithContext(ctx).Order("id")
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}

	var questions []db_models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
