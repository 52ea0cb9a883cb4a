package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogly/web"
)

// parseID reads an integer path parameter. A non-integer value is a routing
// failure, so it renders 404 rather than a handler-level error.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	n, err := strconv.Atoi(ctx.Param(name))
	if err != nil || n <= 0 {
		web.NotFound(ctx, "page not found")
		return 0, false
	}
	return uint(n), true
}
