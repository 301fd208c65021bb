// Package handler exposes the HTTP endpoints. Handlers stay thin:
// bind, delegate to a service, write the envelope.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// pathID parses the :id path parameter. On failure it writes a
// validation error and reports false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
