package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"trivia/cmd/fx/category_fx"
	"trivia/cmd/fx/config_fx"
	"trivia/cmd/fx/controllers_fx"
	"trivia/cmd/fx/db_fx"
	"trivia/cmd/fx/logger_fx"
	"trivia/cmd/fx/metrics_fx"
	"trivia/cmd/fx/question_fx"
	"trivia/cmd/fx/quiz_fx"
	"trivia/internal/api"
	"trivia/internal/api/controllers"
	"trivia/internal/config"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		category_fx.Module,
		question_fx.Module,
		quiz_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	categoryController *controllers.CategoryController,
	questionController *controllers.QuestionController,
	quizController *controllers.QuizController,
	healthController *controllers.HealthController) *gin.Engine {

	return api.NewRouter(cfg, logger, registry, api.Controllers{
		Categories: categoryController,
		Questions:  questionController,
		Quizzes:    quizController,
		Health:     healthController,
	})
}
