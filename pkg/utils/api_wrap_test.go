package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrBadRequest, http.StatusBadRequest},
		{ErrPageNotFound, http.StatusNotFound},
		{ErrCategoryNotFound, http.StatusNotFound},
		{ErrQuestionNotFound, http.StatusUnprocessableEntity},
		{ErrDuplicateQuestion, http.StatusUnprocessableEntity},
		{ErrQuizCategoryNotFound, http.StatusUnprocessableEntity},
		{ErrDatabaseError, http.StatusServiceUnavailable},
		{fmt.Errorf("list questions: %w", ErrDatabaseError), http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrDuplicateQuestion))
	assert.True(t, IsDomainError(fmt.Errorf("wrapped: %w", ErrPageNotFound)))
	assert.False(t, IsDomainError(ErrDatabaseError))
	assert.False(t, IsDomainError(fmt.Errorf("driver: connection refused")))
}

func TestHandleServiceErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleServiceError(c, ErrDatabaseError)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, c.IsAborted())

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{
		Success: false,
		Error:   http.StatusServiceUnavailable,
		Message: ":-( Issue communicating with the database :-(",
	}, body)
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "Resource does not exist", MessageFor(http.StatusNotFound))
	assert.Equal(t, "Unprocessable", MessageFor(http.StatusUnprocessableEntity))
	assert.Equal(t, http.StatusText(http.StatusTeapot), MessageFor(http.StatusTeapot))
}
