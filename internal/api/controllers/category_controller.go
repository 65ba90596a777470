package controllers

import (
	"github.com/gin-gonic/gin"

	"trivia/internal/models/response_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description All categories as an id to type mapping
// @Tags Categories
// @Produce json
// @Success 200 {object} response_models.CategoriesResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}
