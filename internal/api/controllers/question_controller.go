package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

const questionCreatedMessage = "Question has been added successfully"

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Ten questions per page, with the total count and all categories
// @Tags Questions
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} response_models.QuestionPage
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /questions [get]
func (qc *QuestionController) ListQuestions(c *gin.Context) {
	page, err := qc.questionService.ListQuestions(c.Request.Context(), queryPage(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body request_models.CreateQuestionRequest true "New question"
// @Success 200 {object} response_models.CreateQuestionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /questions [post]
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	id, err := qc.questionService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateQuestionResponse{
		Success: true,
		Message: questionCreatedMessage,
		Created: id,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} response_models.DeleteQuestionResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /questions/{id} [delete]
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}

	if err := qc.questionService.DeleteQuestion(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DeleteQuestionResponse{
		Success:   true,
		DeletedID: id,
	})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text
// @Tags Questions
// @Accept json
// @Produce json
// @Param search body request_models.SearchQuestionsRequest true "Search term"
// @Success 200 {object} response_models.QuestionList
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /questions/search [post]
func (qc *QuestionController) SearchQuestions(c *gin.Context) {
	var req request_models.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest)
		return
	}

	result, err := qc.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}

// ListQuestionsByCategory godoc
// @Summary List questions in a category
// @Tags Questions
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response_models.QuestionList
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /categories/{id}/questions [get]
func (qc *QuestionController) ListQuestionsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusNotFound)
		return
	}

	result, err := qc.questionService.ListQuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}
