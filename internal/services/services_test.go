package services

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia/internal/models/request_models"
	"trivia/internal/repositories"
	"trivia/internal/testutil"
)

type fixture struct {
	db        *gorm.DB
	questions QuestionServiceInterface
	quiz      *QuizService
	category  CategoryServiceInterface
}

func newFixture(t *testing.T, seedQuestions int) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedCategories(t, db)
	testutil.SeedQuestions(t, db, seedQuestions)

	store := repositories.NewStore(db)
	logger := zap.NewNop()
	return &fixture{
		db:        db,
		questions: NewQuestionService(store, logger),
		quiz:      NewQuizService(store, logger).(*QuizService),
		category:  NewCategoryService(store, logger),
	}
}

func flex(n int) *request_models.FlexInt {
	v := request_models.FlexInt(n)
	return &v
}
