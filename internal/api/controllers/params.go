package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a non-negative integer path parameter. Anything else is treated
// as a route that does not exist.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// queryPage reads ?page=, falling back to 1 when it is absent or not an integer.
// An integer too large for int yields 0, which no page matches.
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if err != nil {
		return 1
	}
	return page
}
