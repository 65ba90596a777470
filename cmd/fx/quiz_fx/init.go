package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	provideQuizService)

func provideQuizService(store repositories.Store, logger *zap.Logger) services.QuizServiceInterface {
	return services.NewQuizService(store, logger.Named("quizzes"))
}
