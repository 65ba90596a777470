package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"trivia/internal/models/db_models"
	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

const QuestionsPerPage = 10

// maxPage is the last page whose offset still fits in an int.
const maxPage = math.MaxInt/QuestionsPerPage + 1

type QuestionServiceInterface interface {
	ListQuestions(ctx context.Context, page int) (response_models.QuestionPage, error)
	CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
	SearchQuestions(ctx context.Context, term string) (response_models.QuestionList, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) (response_models.QuestionList, error)
}

type QuestionService struct {
	store  repositories.Store
	logger *zap.Logger
}

func NewQuestionService(store repositories.Store, logger *zap.Logger) QuestionServiceInterface {
	return &QuestionService{
		store:  store,
		logger: logger,
	}
}

// ListQuestions returns page (1-based) of all questions ordered by id, together
// with the total question count and every category.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (response_models.QuestionPage, error) {
	if page < 1 || page > maxPage {
		return response_models.QuestionPage{}, utils.ErrPageNotFound
	}

	var result response_models.QuestionPage
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		questions, err := repos.Questions.ListPage(ctx, page, QuestionsPerPage)
		if err != nil {
			return fmt.Errorf("list page %d: %w", page, err)
		}
		if len(questions) == 0 {
			return utils.ErrPageNotFound
		}

		total, err := repos.Questions.Count(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}

		categories, err := repos.Categories.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		result = response_models.QuestionPage{
			QuestionList: response_models.QuestionList{
				Success:        true,
				Questions:      response_models.NewQuestions(questions),
				TotalQuestions: total,
			},
			Categories: response_models.NewCategoryMap(categories),
		}
		return nil
	})
	if err != nil {
		return response_models.QuestionPage{}, translateStoreError(s.logger, "list questions", err)
	}
	return result, nil
}

// CreateQuestion rejects a question whose text exactly matches an existing one.
func (s *QuestionService) CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest) (int, error) {
	if req.Difficulty == nil || req.Category == nil || req.Question == "" || req.Answer == "" {
		return 0, utils.ErrBadRequest
	}

	var id int
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		existing, err := repos.Questions.GetByText(ctx, req.Question)
		if err != nil {
			return fmt.Errorf("find question by text: %w", err)
		}
		if existing != nil {
			return utils.ErrDuplicateQuestion
		}

		id, err = repos.Questions.Create(ctx, &db_models.Question{
			Question:   req.Question,
			Answer:     req.Answer,
			Difficulty: req.Difficulty.Int(),
			Category:   req.Category.Int(),
		})
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, translateStoreError(s.logger, "create question", err)
	}

	s.logger.Info("question created", zap.Int("question_id", id))
	return id, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		existing, err := repos.Questions.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get question %d: %w", id, err)
		}
		if existing == nil {
			return utils.ErrQuestionNotFound
		}

		if err := repos.Questions.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete question %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return translateStoreError(s.logger, "delete question", err)
	}

	s.logger.Info("question deleted", zap.Int("question_id", id))
	return nil
}

func (s *QuestionService) SearchQuestions(ctx context.Context, term string) (response_models.QuestionList, error) {
	var result response_models.QuestionList
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		questions, err := repos.Questions.Search(ctx, term)
		if err != nil {
			return err
		}
		result = newQuestionList(questions, nil)
		return nil
	})
	if err != nil {
		return response_models.QuestionList{}, translateStoreError(s.logger, "search questions", err)
	}
	return result, nil
}

func (s *QuestionService) ListQuestionsByCategory(ctx context.Context, categoryID int) (response_models.QuestionList, error) {
	var result response_models.QuestionList
	err := s.store.Run(ctx, func(repos repositories.Repositories) error {
		category, err := repos.Categories.GetByID(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("get category %d: %w", categoryID, err)
		}
		if category == nil {
			return utils.ErrCategoryNotFound
		}

		questions, err := repos.Questions.ListByCategory(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("list category %d: %w", categoryID, err)
		}
		result = newQuestionList(questions, &category.ID)
		return nil
	})
	if err != nil {
		return response_models.QuestionList{}, translateStoreError(s.logger, "list questions by category", err)
	}
	return result, nil
}

func newQuestionList(questions []db_models.Question, currentCategory *int) response_models.QuestionList {
	return response_models.QuestionList{
		Success:         true,
		Questions:       response_models.NewQuestions(questions),
		TotalQuestions:  int64(len(questions)),
		CurrentCategory: currentCategory,
	}
}
