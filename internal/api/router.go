package api

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trivia/internal/api/controllers"
	"trivia/internal/config"
	"trivia/pkg/middleware"
	"trivia/pkg/utils"
)

type Controllers struct {
	Categories *controllers.CategoryController
	Questions  *controllers.QuestionController
	Quizzes    *controllers.QuizController
	Health     *controllers.HealthController
}

func NewRouter(cfg *config.Config, logger *zap.Logger, registry *prometheus.Registry, ctrls Controllers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.TraceIDMiddleware())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String(middleware.TraceIDKey, c.GetString(middleware.TraceIDKey))}
		},
	}))
	r.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
		utils.RespondError(c, http.StatusInternalServerError)
	}))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.NewMetrics(registry).Handler())

	r.NoRoute(func(c *gin.Context) { utils.RespondError(c, http.StatusNotFound) })
	r.NoMethod(func(c *gin.Context) { utils.RespondError(c, http.StatusMethodNotAllowed) })

	RegisterRoutes(r, ctrls)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.GET("/health", ctrls.Health.Health)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", ctrls.Categories.ListCategories)
	categoriesGroup.GET("/:id/questions", ctrls.Questions.ListQuestionsByCategory)

	questionsGroup := r.Group("/questions")
	questionsGroup.GET("", ctrls.Questions.ListQuestions)
	questionsGroup.POST("", ctrls.Questions.CreateQuestion)
	questionsGroup.POST("/search", ctrls.Questions.SearchQuestions)
	questionsGroup.DELETE("/:id", ctrls.Questions.DeleteQuestion)

	r.POST("/quizzes", ctrls.Quizzes.NextQuestion)
}
