package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// NextQuestion godoc
// @Summary Next quiz question
// @Description A random question not in previous_questions; question is null once the pool is exhausted.
// @Description quiz_category.id 0 draws from every category.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz body request_models.QuizRequest true "Quiz state"
// @Success 200 {object} response_models.QuizResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /quizzes [post]
func (qc *QuizController) NextQuestion(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	question, err := qc.quizService.NextQuestion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.QuizResponse{
		Success:  true,
		Question: question,
	})
}
