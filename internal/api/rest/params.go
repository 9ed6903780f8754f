package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
