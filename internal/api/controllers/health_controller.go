package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	store  repositories.Store
	logger *zap.Logger
}

func NewHealthController(store repositories.Store, logger *zap.Logger) *HealthController {
	return &HealthController{
		store:  store,
		logger: logger,
	}
}

func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		hc.logger.Warn("health check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable)
		return
	}

	utils.RespondSuccess(c, response_models.HealthResponse{Success: true, Status: "ok"})
}
