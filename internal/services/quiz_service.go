package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

// AnyQuizCategory is the quiz_category id that means "questions from every category".
const AnyQuizCategory = repositories.AllCategories

type QuizServiceInterface interface {
	NextQuestion(ctx context.Context, req request_models.QuizRequest) (*response_models.Question, error)
}

type QuizService struct {
	store  repositories.Store
	logger *zap.Logger
	// pick returns a uniform index in [0, n).
	pick func(n int) int
}

func NewQuizService(store repositories.Store, logger *zap.Logger) QuizServiceInterface {
	return &QuizService{
		store:  store,
		logger: logger,
		pick:   rand.IntN,
	}
}

// NextQuestion picks a random question the player has not seen yet. It returns
// nil, nil when the pool is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, req request_models.QuizRequest) (*response_models.Question, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, utils.ErrBadRequest
	}
	categoryID := req.QuizCategory.ID.Int()

	var next *response_models.Question
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		if categoryID != AnyQuizCategory {
			category, err := repos.Categories.GetByID(ctx, categoryID)
			if err != nil {
				return fmt.Errorf("get category %d: %w", categoryID, err)
			}
			if category == nil {
				return utils.ErrQuizCategoryNotFound
			}
		}

		candidates, err := repos.Questions.ListQuizCandidates(ctx, categoryID, req.PreviousQuestions)
		if err != nil {
			return fmt.Errorf("list quiz candidates: %w", err)
		}
		if len(candidates) == 0 {
			return nil
		}

		q := response_models.NewQuestion(candidates[s.pick(len(candidates))])
		next = &q
		return nil
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "next quiz question", err)
	}
	return next, nil
}
