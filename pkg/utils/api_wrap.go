package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Resource does not exist"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgUnprocessable       = "Unprocessable"
	MsgInternalServerError = "Internal Server Error"
	MsgServiceUnavailable  = ":-( Issue communicating with the database :-("
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternalServerError,
	http.StatusServiceUnavailable:  MsgServiceUnavailable,
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func MessageFor(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: MessageFor(code),
	})
}

// StatusFor maps a service error to its HTTP status. The same "missing" condition
// is a 404 on listings and a 422 on delete and quiz; clients depend on both.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrPageNotFound), errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrDuplicateQuestion),
		errors.Is(err, ErrQuizCategoryNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDatabaseError):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, err error) {
	RespondError(c, StatusFor(err))
}
