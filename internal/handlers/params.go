package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/httperr"
)

// parseIDParam reads a numeric path parameter; on failure it writes the 400
// response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
