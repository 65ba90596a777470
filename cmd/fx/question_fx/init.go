package question_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	provideQuestionService)

func provideQuestionService(store repositories.Store, logger *zap.Logger) services.QuestionServiceInterface {
	return services.NewQuestionService(store, logger.Named("questions"))
}
